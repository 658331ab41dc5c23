package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avelychko/users-api/internal/platform/metrics"
)

// Handler exposes the user HTTP endpoints.
type Handler struct {
	service Service
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewHandler(service Service, m *metrics.Metrics, log zerolog.Logger) *Handler {
	return &Handler{service: service, metrics: m, log: log}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Get("/users", h.findUsersByRange)
	router.Post("/users", h.createUser)
	router.Put("/users/{id}", h.updateUser)
	router.Put("/users/{id}/email", h.updateUserEmail)
	router.Delete("/users/{id}", h.deleteUser)
}

// ErrorResponse is the standardized error payload for failed requests.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations,omitempty"`
	Path       string   `json:"path"`
	Method     string   `json:"method"`
}

func (h *Handler) findUsersByRange(w http.ResponseWriter, r *http.Request) {
	filter, violations := parseRangeFilter(r)
	if violations == nil {
		violations = filter.Validate(DateOf(time.Now()))
	}
	if len(violations) > 0 {
		h.writeViolations(w, r, violations)
		return
	}

	users, err := h.service.FindByBirthDateRange(r.Context(), filter.FromDate, filter.ToDate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if users == nil {
		users = []*User{}
	}
	respond(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req ModificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeViolations(w, r, []string{"invalid request body"})
		return
	}
	if violations := req.Validate(DateOf(time.Now())); len(violations) > 0 {
		h.writeViolations(w, r, violations)
		return
	}

	u, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.UsersCreated.Inc()
	respond(w, http.StatusCreated, u)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req ModificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeViolations(w, r, []string{"invalid request body"})
		return
	}
	if violations := req.Validate(DateOf(time.Now())); len(violations) > 0 {
		h.writeViolations(w, r, violations)
		return
	}

	if err := h.service.UpdateUser(r.Context(), id, req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.UsersUpdated.Inc()
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) updateUserEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeViolations(w, r, []string{"invalid request body"})
		return
	}
	if violations := ValidateEmail(req.Email); len(violations) > 0 {
		h.writeViolations(w, r, violations)
		return
	}

	if err := h.service.UpdateUserEmail(r.Context(), id, req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.UsersUpdated.Inc()
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteUserByID(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.UsersDeleted.Inc()
	w.WriteHeader(http.StatusOK)
}

func parseRangeFilter(r *http.Request) (BirthDateRangeFilter, []string) {
	var filter BirthDateRangeFilter
	var violations []string

	if raw := r.URL.Query().Get("fromDate"); raw != "" {
		from, err := ParseDate(raw)
		if err != nil {
			violations = append(violations, err.Error())
		}
		filter.FromDate = from
	}
	if raw := r.URL.Query().Get("toDate"); raw != "" {
		to, err := ParseDate(raw)
		if err != nil {
			violations = append(violations, err.Error())
		}
		filter.ToDate = to
	}
	return filter, violations
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeViolations(w, r, []string{"id must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError translates service error kinds into HTTP responses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	var ageErr *AgeRestrictionError
	var notFoundErr *NotFoundError
	switch {
	case errors.As(err, &ageErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	default:
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}

	respond(w, status, ErrorResponse{
		Error:  err.Error(),
		Path:   r.URL.Path,
		Method: r.Method,
	})
}

func (h *Handler) writeViolations(w http.ResponseWriter, r *http.Request, violations []string) {
	respond(w, http.StatusBadRequest, ErrorResponse{
		Error:      "validation failed",
		Violations: violations,
		Path:       r.URL.Path,
		Method:     r.Method,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
