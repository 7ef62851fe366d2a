package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"google.golang.org/grpc/metadata"

	"sciodb/internal/domain"
	"sciodb/internal/storage"
	"sciodb/internal/storage/mongodb"
)

const userInfoTimeout = 10 * time.Second

// ProjectAuthenticator authenticates callers against an OAuth2 userinfo
// endpoint or an API token, and authorizes them against project
// membership. An OAuth2 bearer token always wins over an API token when
// both are present.
type ProjectAuthenticator struct {
	userInfoEndpoint string
	store            *mongodb.Store
	httpClient       *http.Client
}

// NewProjectAuthenticator creates an authenticator backed by the given
// userinfo endpoint and metadata store.
func NewProjectAuthenticator(userInfoEndpoint string, store *mongodb.Store) *ProjectAuthenticator {
	return &ProjectAuthenticator{
		userInfoEndpoint: userInfoEndpoint,
		store:            store,
		httpClient:       &http.Client{Timeout: userInfoTimeout},
	}
}

// UserID resolves the calling user from the request metadata.
func (a *ProjectAuthenticator) UserID(ctx context.Context) (string, error) {
	if token, ok := bearerToken(ctx); ok {
		return a.fetchUserID(ctx, token)
	}
	if secret, ok := apiTokenSecret(ctx); ok {
		token, err := a.lookupAPIToken(ctx, secret)
		if err != nil {
			return "", err
		}
		return token.UserID, nil
	}
	return "", domain.ErrUnauthenticated
}

// Authorize checks the caller's rights on the project owning the resource.
func (a *ProjectAuthenticator) Authorize(ctx context.Context, resource domain.Resource, right domain.Right, id string) error {
	projectID, err := ResolveProjectID(ctx, a.store, resource, id)
	if err != nil {
		return err
	}

	// Bearer tokens authorize through project membership.
	if token, ok := bearerToken(ctx); ok {
		userID, err := a.fetchUserID(ctx, token)
		if err != nil {
			return err
		}
		return a.authorizeUser(ctx, userID, projectID, right)
	}

	// API tokens are bound to a single project and a fixed set of rights.
	if secret, ok := apiTokenSecret(ctx); ok {
		token, err := a.lookupAPIToken(ctx, secret)
		if err != nil {
			return err
		}
		if token.ProjectID != projectID {
			return domain.ErrPermissionDenied
		}
		if !token.HasRight(right) {
			return domain.ErrPermissionDenied
		}
		return nil
	}

	return domain.ErrUnauthenticated
}

// authorizeUser checks that the user is a project member holding the right.
func (a *ProjectAuthenticator) authorizeUser(ctx context.Context, userID, projectID string, right domain.Right) error {
	project, err := mongodb.FindByID[domain.Project](ctx, a.store, projectID)
	if err != nil {
		if storage.IsNotFound(err) {
			return domain.ErrProjectNotFound
		}
		return err
	}

	for _, u := range project.Users {
		if u.UserID == userID && u.HasRight(right) {
			return nil
		}
	}
	return domain.ErrPermissionDenied
}

// fetchUserID validates the bearer token against the userinfo endpoint and
// returns the subject claim.
func (a *ProjectAuthenticator) fetchUserID(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.userInfoEndpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.ErrInvalidToken
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read userinfo response: %w", err)
	}

	var claims struct {
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(body, &claims); err != nil {
		return "", fmt.Errorf("decode userinfo response: %w", err)
	}
	if claims.Sub == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Sub, nil
}

// lookupAPIToken finds the API token document for a presented secret.
func (a *ProjectAuthenticator) lookupAPIToken(ctx context.Context, secret string) (*domain.APIToken, error) {
	token, err := mongodb.FindOne[domain.APIToken](ctx, a.store, bson.M{"token": secret})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return token, nil
}

// bearerToken extracts the OAuth2 bearer token from the request metadata.
func bearerToken(ctx context.Context) (string, bool) {
	return metadataValue(ctx, AccessTokenKey)
}

// apiTokenSecret extracts the API token secret from the request metadata.
func apiTokenSecret(ctx context.Context) (string, bool) {
	return metadataValue(ctx, APITokenKey)
}

func metadataValue(ctx context.Context, key string) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(key)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}
