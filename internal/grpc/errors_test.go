package grpc

import (
	"errors"
	"fmt"
	"testing"

	"sciodb/internal/domain"
	"sciodb/internal/storage"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ==================== Error Mapping Tests ====================

func TestMapDomainErrorNil(t *testing.T) {
	if err := MapDomainError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestMapDomainErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not found", storage.ErrNotFound, codes.NotFound},
		{"invalid name", domain.ErrInvalidName, codes.InvalidArgument},
		{"project not found", domain.ErrProjectNotFound, codes.NotFound},
		{"revision pinned", domain.ErrRevisionReferenced, codes.InvalidArgument},
		{"unauthenticated", domain.ErrUnauthenticated, codes.Unauthenticated},
		{"invalid token", domain.ErrInvalidToken, codes.Unauthenticated},
		{"permission denied", domain.ErrPermissionDenied, codes.PermissionDenied},
		{"resolution failure", domain.ErrCannotResolveProject, codes.Internal},
		{"upload not started", storage.ErrUploadNotStarted, codes.FailedPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapDomainError(tt.err)
			if got := status.Code(mapped); got != tt.code {
				t.Errorf("expected code %v, got %v", tt.code, got)
			}
		})
	}
}

func TestMapDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", domain.ErrDatasetNotFound)
	mapped := MapDomainError(wrapped)
	if got := status.Code(mapped); got != codes.NotFound {
		t.Errorf("expected NotFound for wrapped error, got %v", got)
	}
}

func TestMapDomainErrorUnknown(t *testing.T) {
	mapped := MapDomainError(errors.New("something unexpected"))
	if got := status.Code(mapped); got != codes.Internal {
		t.Errorf("expected Internal for unknown error, got %v", got)
	}
}

func TestMapDomainErrorPassesThroughStatus(t *testing.T) {
	original := status.Error(codes.Aborted, "already a status")
	mapped := MapDomainError(original)
	if got := status.Code(mapped); got != codes.Aborted {
		t.Errorf("expected status error to pass through, got %v", got)
	}
}

func TestNewDetailedErrorCarriesErrorInfo(t *testing.T) {
	err := NewDetailedError(codes.NotFound, "Dataset not found", domain.ErrDatasetNotFound)

	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected a status error")
	}

	var found bool
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			found = true
			if info.Reason != "NOT_FOUND" {
				t.Errorf("expected reason NOT_FOUND, got %s", info.Reason)
			}
		}
	}
	if !found {
		t.Error("expected ErrorInfo detail")
	}
}

func TestNewValidationErrorCarriesFieldViolations(t *testing.T) {
	err := NewValidationError("field is not updatable", map[string]string{
		"field": "must be one of: name, description",
	})

	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected a status error")
	}
	if st.Code() != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", st.Code())
	}

	var found bool
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.FieldViolations {
				if v.Field == "field" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Error("expected BadRequest field violation for \"field\"")
	}
}
