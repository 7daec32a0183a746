package lib

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
)

const csrfTokenLifetime = 24 * time.Hour

// GenerateCSRFToken generates a cryptographically secure random token
func GenerateCSRFToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate CSRF token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// EnsureCSRFToken returns the request's CSRF token, issuing a new cookie when
// the browser has none yet.
func EnsureCSRFToken(w http.ResponseWriter, r *http.Request) (string, error) {
	if token, err := GetCookieValue(CSRFCookieName, r); err == nil && token != "" {
		return token, nil
	}

	token, err := GenerateCSRFToken()
	if err != nil {
		return "", err
	}
	SetCSRFCookie(token, time.Now().Add(csrfTokenLifetime), w)
	return token, nil
}
