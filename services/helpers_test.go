package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"storefront/lib"
	"storefront/structs"
	"sync"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
)

func newTestLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}

func newTestConfig(baseURL string) *structs.Config {
	return &structs.Config{
		Upstream: structs.UpstreamConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
		Identity: structs.IdentityConfig{ClientID: "test-client", RefreshSkew: time.Minute},
		Session:  structs.SessionConfig{Store: "memory", TTL: time.Hour, Secret: "test-session-secret"},
	}
}

func newIDToken(t *testing.T, email string, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":              "sub-" + email,
		"cognito:username": "user-" + email,
		"email":            email,
		"exp":              expiresAt.Unix(),
	}).SignedString([]byte("identity-provider-key"))
	if err != nil {
		t.Fatalf("failed to sign id token: %v", err)
	}
	return token
}

// fakeIdentity is an in-memory IdentityProvider.
type fakeIdentity struct {
	mu           sync.Mutex
	password     string
	signInToken  string
	refreshToken string
	refreshed    string
	refreshErr   error
	refreshCalls int
	// refreshCtxErr is ctx.Err() as seen by the last Refresh call
	refreshCtxErr error
}

func (f *fakeIdentity) SignIn(_ context.Context, _, password string) (*structs.IdentityTokens, error) {
	if password != f.password {
		return nil, lib.ErrInvalidCredentials
	}
	return &structs.IdentityTokens{IDToken: f.signInToken, RefreshToken: f.refreshToken}, nil
}

func (f *fakeIdentity) Refresh(ctx context.Context, _, refreshToken string) (*structs.IdentityTokens, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.refreshCalls++
	f.refreshCtxErr = ctx.Err()
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	if refreshToken != f.refreshToken {
		return nil, lib.ErrInvalidToken
	}
	return &structs.IdentityTokens{IDToken: f.refreshed}, nil
}

// staticCredentials always returns the same credential.
func staticCredentials(token, userID string) CredentialSource {
	return CredentialSourceFunc(func(context.Context) (*structs.Credential, error) {
		return &structs.Credential{Token: token, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil
	})
}

// countingServer wraps handler and counts the requests it receives.
func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int) {
	t.Helper()

	var mu sync.Mutex
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}
