package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// SetupCORS builds the CORS handler from config. Empty entries left over
// from list parsing are dropped, and the CSRF header is always allowed since
// scripted order clients cannot work without it.
func (mw *Middleware) SetupCORS() *cors.Cors {
	allowedHeaders := compact(mw.cfg.Cors.AllowedHeaders)
	if !containsFold(allowedHeaders, CSRFHeaderName) {
		allowedHeaders = append(allowedHeaders, CSRFHeaderName)
	}

	allowedMethods := compact(mw.cfg.Cors.AllowedMethods)
	if len(allowedMethods) == 0 {
		allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   compact(mw.cfg.Cors.AllowedOrigins),
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   append(compact(mw.cfg.Cors.ExposedHeaders), RequestIDHeader),
		AllowCredentials: mw.cfg.Cors.AllowCredentials,
		MaxAge:           mw.cfg.Cors.MaxAge,
	})
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
