package lib

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestParseIdentityToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signTestToken(t, jwt.MapClaims{
		"sub":              "8f1c2e7a-0000-4000-8000-000000000001",
		"cognito:username": "8f1c2e7a",
		"email":            "jane@example.com",
		"exp":              exp.Unix(),
	})

	claims, err := ParseIdentityToken(token)
	if err != nil {
		t.Fatalf("ParseIdentityToken: %v", err)
	}

	if claims.LoginID != "jane@example.com" {
		t.Errorf("LoginID = %q, want jane@example.com", claims.LoginID)
	}
	if claims.Username != "8f1c2e7a" {
		t.Errorf("Username = %q, want 8f1c2e7a", claims.Username)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", claims.ExpiresAt, exp)
	}
}

func TestParseIdentityToken_FallsBackToSubject(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := ParseIdentityToken(token)
	if err != nil {
		t.Fatalf("ParseIdentityToken: %v", err)
	}

	if claims.Username != "user-1" || claims.LoginID != "user-1" {
		t.Errorf("got username %q login %q, want both user-1", claims.Username, claims.LoginID)
	}
}

func TestParseIdentityToken_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"garbage":     "not-a-jwt",
		"missing exp": signTestToken(t, jwt.MapClaims{"sub": "user-1"}),
		"missing sub": signTestToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseIdentityToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}
