// Package auth authenticates gRPC callers and authorizes them against the
// project owning the targeted resource. Two credentials are supported: an
// OAuth2 bearer token validated against a userinfo endpoint, and a
// project-scoped API token minted by the daemon itself.
package auth

import (
	"context"
	"fmt"

	"sciodb/internal/config"
	"sciodb/internal/domain"
	"sciodb/internal/storage/mongodb"
)

// Metadata keys credentials are carried under.
const (
	// AccessTokenKey carries an OAuth2 bearer token.
	AccessTokenKey = "AccessToken"

	// APITokenKey carries an API token secret.
	APITokenKey = "API_TOKEN"
)

// Authenticator resolves the calling user and checks their rights on the
// project owning a resource.
type Authenticator interface {
	// UserID returns the id of the calling user.
	UserID(ctx context.Context) (string, error)

	// Authorize checks that the caller holds the given right on the
	// project owning the resource with the given id.
	Authorize(ctx context.Context, resource domain.Resource, right domain.Right, id string) error
}

// New builds the authenticator selected by the configuration. Type
// "debug" disables authentication entirely and must never be used in
// production.
func New(cfg *config.Config, store *mongodb.Store) (Authenticator, error) {
	switch cfg.Authentication.Type {
	case "oauth2":
		if cfg.OAuth2Auth.UserInfoEndpoint == "" {
			return nil, fmt.Errorf("oauth2 authentication requires oauth2_auth.user_info_endpoint")
		}
		return NewProjectAuthenticator(cfg.OAuth2Auth.UserInfoEndpoint, store), nil
	case "debug":
		return NewDebugAuthenticator(), nil
	default:
		return nil, fmt.Errorf("unknown authentication type %q", cfg.Authentication.Type)
	}
}
