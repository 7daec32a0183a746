package middleware

import (
	"crypto/subtle"
	"net/http"
	"storefront/lib"

	"github.com/MonkyMars/gecho"
)

const (
	CSRFHeaderName = "X-CSRF-Token"
	CSRFFormField  = "csrf_token"
)

func (mw *Middleware) SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Content-Security-Policy", "default-src 'self'")
			w.Header().Set("Permissions-Policy", "geolocation=(), camera=()")

			next.ServeHTTP(w, r)
		})
	}
}

func (mw *Middleware) BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// CSRFMiddleware compares the csrf cookie with the X-CSRF-Token header, or
// with the csrf_token form field for plain HTML form posts.
func (mw *Middleware) CSRFMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(lib.CSRFCookieName)
			if err != nil || cookie.Value == "" {
				mw.logger.Warn("CSRF cookie missing", gecho.Field("path", r.URL.Path))
				gecho.Forbidden(w, gecho.WithMessage("csrf missing"), gecho.Send())
				return
			}

			token := r.Header.Get(CSRFHeaderName)
			if token == "" {
				token = r.PostFormValue(CSRFFormField)
			}

			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cookie.Value)) != 1 {
				mw.logger.Warn("CSRF token mismatch", gecho.Field("path", r.URL.Path))
				gecho.Forbidden(w, gecho.WithMessage("invalid csrf token"), gecho.Send())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
