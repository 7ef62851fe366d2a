package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/metadata"

	"sciodb/internal/config"
	"sciodb/internal/domain"
)

func bearerContext(token string) context.Context {
	md := metadata.Pairs(AccessTokenKey, token)
	return metadata.NewIncomingContext(context.Background(), md)
}

func apiTokenContext(secret string) context.Context {
	md := metadata.Pairs(APITokenKey, secret)
	return metadata.NewIncomingContext(context.Background(), md)
}

// userInfoServer fakes the OAuth2 userinfo endpoint. It accepts exactly one
// bearer token and answers with the given subject.
func userInfoServer(t *testing.T, wantToken, sub string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+wantToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"` + sub + `","email":"ignored@example.com"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ==================== OAuth2 Tests ====================

func TestUserIDFromBearerToken(t *testing.T) {
	srv := userInfoServer(t, "valid-token", "user-42")
	a := NewProjectAuthenticator(srv.URL, nil)

	userID, err := a.UserID(bearerContext("valid-token"))
	if err != nil {
		t.Fatalf("UserID failed: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("expected user-42, got %q", userID)
	}
}

func TestUserIDRejectedToken(t *testing.T) {
	srv := userInfoServer(t, "valid-token", "user-42")
	a := NewProjectAuthenticator(srv.URL, nil)

	_, err := a.UserID(bearerContext("wrong-token"))
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUserIDEmptySubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"email":"no-sub@example.com"}`))
	}))
	t.Cleanup(srv.Close)
	a := NewProjectAuthenticator(srv.URL, nil)

	_, err := a.UserID(bearerContext("any"))
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUserIDNoCredentials(t *testing.T) {
	a := NewProjectAuthenticator("http://unused", nil)

	_, err := a.UserID(context.Background())
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}

	// Present but empty metadata values do not count as credentials.
	md := metadata.Pairs(AccessTokenKey, "")
	ctx := metadata.NewIncomingContext(context.Background(), md)
	_, err = a.UserID(ctx)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated for empty token, got %v", err)
	}
}

func TestBearerTokenWinsOverAPIToken(t *testing.T) {
	srv := userInfoServer(t, "bearer-token", "oauth-user")
	a := NewProjectAuthenticator(srv.URL, nil)

	md := metadata.Pairs(
		AccessTokenKey, "bearer-token",
		APITokenKey, "api-secret",
	)
	ctx := metadata.NewIncomingContext(context.Background(), md)

	// The API token path would hit the nil store; resolving through the
	// bearer token proves precedence.
	userID, err := a.UserID(ctx)
	if err != nil {
		t.Fatalf("UserID failed: %v", err)
	}
	if userID != "oauth-user" {
		t.Errorf("expected oauth-user, got %q", userID)
	}
}

// ==================== Debug Authenticator Tests ====================

func TestDebugAuthenticator(t *testing.T) {
	a := NewDebugAuthenticator()

	userID, err := a.UserID(context.Background())
	if err != nil {
		t.Fatalf("UserID failed: %v", err)
	}
	if userID != "testuser" {
		t.Errorf("expected testuser, got %q", userID)
	}

	if err := a.Authorize(context.Background(), domain.ResourceProject, domain.RightWrite, "any"); err != nil {
		t.Errorf("debug authorize should always pass, got %v", err)
	}
}

// ==================== Constructor Tests ====================

func TestNewDispatch(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Authentication.Type = "debug"
	a, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New(debug) failed: %v", err)
	}
	if _, ok := a.(*DebugAuthenticator); !ok {
		t.Errorf("expected *DebugAuthenticator, got %T", a)
	}

	cfg = config.DefaultConfig()
	cfg.Authentication.Type = "oauth2"
	cfg.OAuth2Auth.UserInfoEndpoint = "https://idp.example.com/userinfo"
	a, err = New(cfg, nil)
	if err != nil {
		t.Fatalf("New(oauth2) failed: %v", err)
	}
	if _, ok := a.(*ProjectAuthenticator); !ok {
		t.Errorf("expected *ProjectAuthenticator, got %T", a)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Authentication.Type = "oauth2"
	cfg.OAuth2Auth.UserInfoEndpoint = ""
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error for oauth2 without userinfo endpoint")
	}

	cfg = config.DefaultConfig()
	cfg.Authentication.Type = "ldap"
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error for unknown authentication type")
	}
}

// ==================== Resolution Tests ====================

func TestResolveProjectIDShortCircuits(t *testing.T) {
	// These paths never touch the store.
	projectID, err := ResolveProjectID(context.Background(), nil, domain.ResourceProject, "p1")
	if err != nil {
		t.Fatalf("resolving a project should be the identity: %v", err)
	}
	if projectID != "p1" {
		t.Errorf("expected p1, got %q", projectID)
	}

	_, err = ResolveProjectID(context.Background(), nil, domain.ResourceDataset, "")
	if !errors.Is(err, domain.ErrCannotResolveProject) {
		t.Errorf("expected ErrCannotResolveProject for empty id, got %v", err)
	}

	_, err = ResolveProjectID(context.Background(), nil, domain.Resource("bogus"), "x")
	if !errors.Is(err, domain.ErrCannotResolveProject) {
		t.Errorf("expected ErrCannotResolveProject for unknown resource, got %v", err)
	}
}
