package structs

import "time"

type Config struct {
	Server   ServerConfig
	Cors     CorsConfig
	Upstream UpstreamConfig
	Identity IdentityConfig
	Session  SessionConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	AppName        string        `env:"APP_NAME" env-default:"Storefront"`
	Environment    string        `env:"APP_ENV" env-default:"development"` // development, production
	Port           string        `env:"APP_PORT" env-default:":8080"`
	ReadTimeout    time.Duration `env:"SERVER_READ_TIME_OUT" env-default:"15s"`
	WriteTimeout   time.Duration `env:"SERVER_WRITE_TIME_OUT" env-default:"30s"`
	IdleTimeout    time.Duration `env:"SERVER_IDLE_TIME_OUT" env-default:"60s"`
	MaxHeaderBytes int           `env:"SERVER_MAX_HEADER_BYTES" env-default:"1048576"` // 1 MB
	CookieDomain   string        `env:"SERVER_COOKIE_DOMAIN"`
}

type CorsConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOW_ORIGINS" env-default:"http://localhost:8080"`
	AllowedMethods   []string `env:"CORS_ALLOW_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOW_HEADERS" env-default:"Origin,Content-Type,Accept,Authorization,X-CSRF-Token"`
	ExposedHeaders   []string `env:"CORS_EXPOSED_HEADERS" env-default:"Content-Length"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE" env-default:"300"` // in seconds
}

// UpstreamConfig points at the remote REST API serving /products and /orders.
type UpstreamConfig struct {
	BaseURL string        `env:"API_GATEWAY_URL"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"15s"`
}

type IdentityConfig struct {
	Region       string        `env:"AWS_REGION" env-default:"eu-north-1"`
	UserPoolID   string        `env:"COGNITO_USER_POOL_ID"`
	ClientID     string        `env:"COGNITO_CLIENT_ID"`
	ClientSecret string        `env:"COGNITO_CLIENT_SECRET"`
	RefreshSkew  time.Duration `env:"AUTH_REFRESH_SKEW" env-default:"60s"`
}

type SessionConfig struct {
	Store  string        `env:"SESSION_STORE" env-default:"memory"` // memory, redis
	TTL    time.Duration `env:"SESSION_TTL" env-default:"720h"`
	Secret string        `env:"SESSION_SECRET" env-default:"default_session_secret"`
}

type CacheConfig struct {
	Address         string        `env:"CACHE_ADDRESS" env-default:"localhost:6379"`
	Username        string        `env:"CACHE_USERNAME"`
	Password        string        `env:"CACHE_PASSWORD"`
	DB              int           `env:"CACHE_DB" env-default:"0"`
	PoolSize        int           `env:"CACHE_POOL_SIZE" env-default:"10"`
	MinIdleConns    int           `env:"CACHE_MIN_IDLE_CONNS" env-default:"2"`
	MaxIdleConns    int           `env:"CACHE_MAX_IDLE_CONNS" env-default:"5"`
	PoolTimeout     time.Duration `env:"CACHE_POOL_TIMEOUT" env-default:"4s"`
	IdleTimeout     time.Duration `env:"CACHE_IDLE_TIMEOUT" env-default:"5m"`
	DialTimeout     time.Duration `env:"CACHE_DIAL_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `env:"CACHE_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `env:"CACHE_WRITE_TIMEOUT" env-default:"3s"`
	MaxRetries      int           `env:"CACHE_MAX_RETRIES" env-default:"3"`
	MinRetryBackoff time.Duration `env:"CACHE_MIN_RETRY_BACKOFF" env-default:"8ms"`
	MaxRetryBackoff time.Duration `env:"CACHE_MAX_RETRY_BACKOFF" env-default:"512ms"`
}
