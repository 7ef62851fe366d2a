// Package grpc provides gRPC service implementations for the sciodb daemon.
package grpc

import (
	"errors"
	"fmt"

	"sciodb/internal/domain"
	"sciodb/internal/storage"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// domainErrorMapping maps domain errors to gRPC codes and descriptions.
var domainErrorMapping = map[error]struct {
	code codes.Code
	desc string
}{
	// Storage errors (generic)
	storage.ErrNotFound:         {codes.NotFound, "Resource not found"},
	storage.ErrAlreadyExists:    {codes.AlreadyExists, "Resource already exists"},
	storage.ErrInvalidInput:     {codes.InvalidArgument, "Invalid input"},
	storage.ErrConnectionFailed: {codes.Unavailable, "Storage backend unavailable"},
	storage.ErrPresignFailed:    {codes.Internal, "Could not presign object URL"},
	storage.ErrUploadNotStarted: {codes.FailedPrecondition, "Multipart upload has not been started"},

	// Validation errors
	domain.ErrInvalidID:          {codes.InvalidArgument, "Invalid ID"},
	domain.ErrInvalidName:        {codes.InvalidArgument, "Invalid name"},
	domain.ErrInvalidStatus:      {codes.InvalidArgument, "Invalid status"},
	domain.ErrInvalidRight:       {codes.InvalidArgument, "Invalid right"},
	domain.ErrInvalidRevisionRef: {codes.InvalidArgument, "Invalid revision reference"},
	domain.ErrInvalidField:       {codes.InvalidArgument, "Invalid field"},

	// Project errors
	domain.ErrProjectNotFound: {codes.NotFound, "Project not found"},

	// Dataset errors
	domain.ErrDatasetNotFound:        {codes.NotFound, "Dataset not found"},
	domain.ErrDatasetVersionNotFound: {codes.NotFound, "Dataset version not found"},

	// Object group errors
	domain.ErrObjectGroupNotFound: {codes.NotFound, "Object group not found"},
	domain.ErrRevisionNotFound:    {codes.NotFound, "Object group revision not found"},
	domain.ErrRevisionReferenced:  {codes.InvalidArgument, "Revision is pinned by dataset versions"},

	// Object errors
	domain.ErrObjectNotFound: {codes.NotFound, "Object not found"},

	// Auth errors
	domain.ErrUnauthenticated:  {codes.Unauthenticated, "No authentication token provided"},
	domain.ErrInvalidToken:     {codes.Unauthenticated, "Invalid authentication token"},
	domain.ErrPermissionDenied: {codes.PermissionDenied, "Permission denied"},
	domain.ErrTokenNotFound:    {codes.NotFound, "API token not found"},

	// Resolution failures are reported as internal so callers cannot probe
	// for the existence of resources they may not see.
	domain.ErrCannotResolveProject: {codes.Internal, "Could not resolve owning project"},
}

// MapDomainError converts a domain error to a gRPC status error with rich details.
func MapDomainError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	// Look up the error in our mapping
	for domainErr, mapping := range domainErrorMapping {
		if errors.Is(err, domainErr) {
			return NewDetailedError(mapping.code, mapping.desc, err)
		}
	}

	// Default to internal error for unknown errors
	return status.Errorf(codes.Internal, "internal error: %v", err)
}

// NewDetailedError creates a gRPC error with rich error details.
func NewDetailedError(code codes.Code, message string, cause error) error {
	st := status.New(code, message)

	// Add error info details
	details := &errdetails.ErrorInfo{
		Reason: codeToReason(code),
		Domain: "sciodb.dev",
		Metadata: map[string]string{
			"error_type": fmt.Sprintf("%T", cause),
		},
	}

	// Add the original error message if different
	if cause != nil && cause.Error() != message {
		details.Metadata["original_error"] = cause.Error()
	}

	st, err := st.WithDetails(details)
	if err != nil {
		// Fall back to simple error if details can't be added
		return status.Error(code, message)
	}

	return st.Err()
}

// NewValidationError creates a gRPC error for validation failures with field-level details.
func NewValidationError(message string, fieldViolations map[string]string) error {
	st := status.New(codes.InvalidArgument, message)

	br := &errdetails.BadRequest{}
	for field, desc := range fieldViolations {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       field,
			Description: desc,
		})
	}

	st, err := st.WithDetails(br)
	if err != nil {
		return status.Error(codes.InvalidArgument, message)
	}

	return st.Err()
}

// NewResourceNotFoundError creates a NotFound error with resource details.
func NewResourceNotFoundError(resourceType, resourceID string) error {
	st := status.New(codes.NotFound, fmt.Sprintf("%s not found: %s", resourceType, resourceID))

	ri := &errdetails.ResourceInfo{
		ResourceType: resourceType,
		ResourceName: resourceID,
		Description:  fmt.Sprintf("The requested %s could not be found", resourceType),
	}

	st, err := st.WithDetails(ri)
	if err != nil {
		return status.Errorf(codes.NotFound, "%s not found: %s", resourceType, resourceID)
	}

	return st.Err()
}

// NewPreconditionError creates a FailedPrecondition error with details.
func NewPreconditionError(message string, violations map[string]string) error {
	st := status.New(codes.FailedPrecondition, message)

	pf := &errdetails.PreconditionFailure{}
	for condType, desc := range violations {
		pf.Violations = append(pf.Violations, &errdetails.PreconditionFailure_Violation{
			Type:        condType,
			Description: desc,
		})
	}

	st, err := st.WithDetails(pf)
	if err != nil {
		return status.Error(codes.FailedPrecondition, message)
	}

	return st.Err()
}

// codeToReason converts a gRPC code to a reason string.
func codeToReason(code codes.Code) string {
	switch code {
	case codes.InvalidArgument:
		return "INVALID_ARGUMENT"
	case codes.NotFound:
		return "NOT_FOUND"
	case codes.AlreadyExists:
		return "ALREADY_EXISTS"
	case codes.PermissionDenied:
		return "PERMISSION_DENIED"
	case codes.Unauthenticated:
		return "UNAUTHENTICATED"
	case codes.ResourceExhausted:
		return "RESOURCE_EXHAUSTED"
	case codes.FailedPrecondition:
		return "FAILED_PRECONDITION"
	case codes.Aborted:
		return "ABORTED"
	case codes.Internal:
		return "INTERNAL"
	case codes.Unavailable:
		return "UNAVAILABLE"
	case codes.DataLoss:
		return "DATA_LOSS"
	default:
		return "UNKNOWN"
	}
}
