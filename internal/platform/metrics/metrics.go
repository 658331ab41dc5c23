package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for user lifecycle events.
type Metrics struct {
	UsersCreated prometheus.Counter
	UsersUpdated prometheus.Counter
	UsersDeleted prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_api_users_created_total",
			Help: "Total number of users created",
		}),
		UsersUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_api_users_updated_total",
			Help: "Total number of user updates, including email-only updates",
		}),
		UsersDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_api_users_deleted_total",
			Help: "Total number of users deleted",
		}),
	}
}
