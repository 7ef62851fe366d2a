// Package grpc provides gRPC service implementations for the sciodb daemon.
package grpc

import (
	"sciodb/internal/auth"
	"sciodb/internal/storage/mongodb"
	"sciodb/internal/storage/s3"
)

// Deps holds the shared dependencies every service server needs: the
// metadata store, the object store, and the authenticator.
type Deps struct {
	Store   *mongodb.Store
	Objects *s3.Store
	Auth    auth.Authenticator
}
