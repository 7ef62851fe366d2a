package domain

import "errors"

// Domain errors
var (
	// Validation errors
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidRight       = errors.New("invalid right")
	ErrInvalidRevisionRef = errors.New("invalid revision reference")
	ErrInvalidField       = errors.New("invalid field")

	// Project errors
	ErrProjectNotFound = errors.New("project not found")

	// Dataset errors
	ErrDatasetNotFound = errors.New("dataset not found")

	// Object group errors
	ErrObjectGroupNotFound = errors.New("object group not found")
	ErrRevisionNotFound    = errors.New("object group revision not found")
	ErrRevisionReferenced  = errors.New("revision is referenced by dataset versions")

	// Dataset version errors
	ErrDatasetVersionNotFound = errors.New("dataset version not found")

	// Object errors
	ErrObjectNotFound = errors.New("object not found")

	// Auth errors
	ErrUnauthenticated  = errors.New("no authentication token provided")
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTokenNotFound    = errors.New("api token not found")

	// Resolution errors
	ErrCannotResolveProject = errors.New("cannot resolve owning project")
)
