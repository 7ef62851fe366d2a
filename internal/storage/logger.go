package storage

import (
	"sciodb/internal/logger"
)

// log is the package-level logger for storage operations.
// It defaults to the default logger but can be set via SetLogger.
var log = logger.Default()

// SetLogger sets the logger for all storage operations.
// This should be called before creating any storage instances.
func SetLogger(l *logger.Logger) {
	if l != nil {
		log = l.With("component", "storage")
	}
}

// Logger returns a logger scoped to the given subcomponent.
func Logger(subcomponent string) *logger.Logger {
	return log.With("subcomponent", subcomponent)
}
