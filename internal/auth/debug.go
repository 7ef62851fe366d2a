package auth

import (
	"context"

	"sciodb/internal/domain"
)

// debugUserID is the fixed identity of every caller in debug mode.
const debugUserID = "testuser"

// DebugAuthenticator accepts every request as a fixed test user. It exists
// for local development and integration tests only.
type DebugAuthenticator struct{}

// NewDebugAuthenticator creates an authenticator that allows everything.
func NewDebugAuthenticator() *DebugAuthenticator {
	return &DebugAuthenticator{}
}

// UserID returns the fixed debug identity.
func (*DebugAuthenticator) UserID(context.Context) (string, error) {
	return debugUserID, nil
}

// Authorize allows every request.
func (*DebugAuthenticator) Authorize(context.Context, domain.Resource, domain.Right, string) error {
	return nil
}
