package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a structured stdout logger at the requested level.
// Unknown levels fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
