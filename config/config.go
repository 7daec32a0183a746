package config

import (
	"errors"
	"storefront/structs"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultSessionSecret mirrors the env-default of SESSION_SECRET
const DefaultSessionSecret = "default_session_secret"

var (
	ErrMissingGatewayURL  = errors.New("API_GATEWAY_URL is required")
	ErrInsecureSessionKey = errors.New("SESSION_SECRET must be set in production")
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

// GetConfig reads the environment once and panics when a value cannot be parsed.
func GetConfig() *structs.Config {
	configOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			panic(err)
		}
		configInstance = cfg
	})
	return configInstance
}

// Load reads a fresh Config from the environment without touching the singleton.
func Load() (*structs.Config, error) {
	cfg := &structs.Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogLevel is "info" in production and "debug" everywhere else
func LogLevel(cfg *structs.Config) string {
	if isProduction(cfg) {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return isProduction(GetConfig())
}

func isProduction(cfg *structs.Config) bool {
	return cfg.Server.Environment == "production"
}

// Validate rejects configs the server must not start with.
func Validate(cfg *structs.Config) error {
	if cfg.Upstream.BaseURL == "" {
		return ErrMissingGatewayURL
	}
	if isProduction(cfg) && (cfg.Session.Secret == "" || cfg.Session.Secret == DefaultSessionSecret) {
		return ErrInsecureSessionKey
	}
	return nil
}
