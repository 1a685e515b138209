package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds the structured logger shared by a binary. The level
// comes from LOG_LEVEL (debug, info, warn, error); unknown values mean info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}
