// Package storage holds the shared contract of the persistence layers:
// the MongoDB metadata store and the S3 object store.
package storage

import "errors"

// Storage errors
var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when trying to create a duplicate entity.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned for invalid input parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConnectionFailed is returned when a database connection fails.
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrPresignFailed is returned when a presigned URL cannot be created.
	ErrPresignFailed = errors.New("failed to presign object storage request")

	// ErrUploadNotStarted is returned when a multipart operation targets an
	// object without an active multipart upload.
	ErrUploadNotStarted = errors.New("multipart upload not started")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is a duplicate error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
