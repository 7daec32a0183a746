package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != ":8080" {
		t.Errorf("Server.Port = %q, want :8080", cfg.Server.Port)
	}
	if cfg.Upstream.Timeout != 15*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 15s", cfg.Upstream.Timeout)
	}
	if cfg.Identity.RefreshSkew != time.Minute {
		t.Errorf("Identity.RefreshSkew = %v, want 1m", cfg.Identity.RefreshSkew)
	}
	if cfg.Session.Store != "memory" {
		t.Errorf("Session.Store = %q, want memory", cfg.Session.Store)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_GATEWAY_URL", "https://api.example.test/prod")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://shop.example.test,https://www.example.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Upstream.BaseURL != "https://api.example.test/prod" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 3*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 3s", cfg.Upstream.Timeout)
	}
	if cfg.Session.Store != "redis" {
		t.Errorf("Session.Store = %q, want redis", cfg.Session.Store)
	}
	if len(cfg.Cors.AllowedOrigins) != 2 {
		t.Errorf("Cors.AllowedOrigins = %v, want 2 entries", cfg.Cors.AllowedOrigins)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unparseable duration")
	}
}

func TestLogLevel(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := LogLevel(cfg); got != "debug" {
		t.Errorf("LogLevel = %q, want debug outside production", got)
	}

	cfg.Server.Environment = "production"
	if got := LogLevel(cfg); got != "info" {
		t.Errorf("LogLevel = %q, want info in production", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		baseURL string
		secret  string
		wantErr error
	}{
		{name: "development with default secret", env: "development", baseURL: "https://api.example.test", secret: DefaultSessionSecret},
		{name: "production with own secret", env: "production", baseURL: "https://api.example.test", secret: "a-real-secret"},
		{name: "missing gateway", env: "development", secret: "a-real-secret", wantErr: ErrMissingGatewayURL},
		{name: "production with default secret", env: "production", baseURL: "https://api.example.test", secret: DefaultSessionSecret, wantErr: ErrInsecureSessionKey},
		{name: "production with empty secret", env: "production", baseURL: "https://api.example.test", wantErr: ErrInsecureSessionKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			cfg.Server.Environment = tt.env
			cfg.Upstream.BaseURL = tt.baseURL
			cfg.Session.Secret = tt.secret

			if err := Validate(cfg); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_DefaultSessionSecret(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Session.Secret != DefaultSessionSecret {
		t.Errorf("Session.Secret = %q, want the DefaultSessionSecret fallback", cfg.Session.Secret)
	}
}
