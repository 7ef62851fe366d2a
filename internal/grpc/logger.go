package grpc

import (
	"sciodb/internal/grpc/middleware"
	"sciodb/internal/logger"
)

// log is the package-level logger for the gRPC server.
var log = logger.Default()

// SetLogger replaces the server logger and propagates it to the
// interceptors.
func SetLogger(l *logger.Logger) {
	log = l.With("component", "grpc")
	middleware.SetLogger(l)
}
