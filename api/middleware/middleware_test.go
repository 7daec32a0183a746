package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"storefront/lib"
	"storefront/structs"
	"strings"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func newTestMiddleware(cfg *structs.Config) *Middleware {
	if cfg == nil {
		cfg = &structs.Config{}
	}
	return NewMiddleware(cfg, gecho.NewDefaultLogger(), nil)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestCSRFMiddleware(t *testing.T) {
	handler := newTestMiddleware(nil).CSRFMiddleware()(okHandler())

	tests := []struct {
		name   string
		method string
		cookie string
		header string
		form   string
		want   int
	}{
		{name: "safe method passes", method: http.MethodGet, want: http.StatusNoContent},
		{name: "missing cookie", method: http.MethodPost, header: "abc", want: http.StatusForbidden},
		{name: "header matches", method: http.MethodPost, cookie: "abc", header: "abc", want: http.StatusNoContent},
		{name: "form field matches", method: http.MethodPost, cookie: "abc", form: "abc", want: http.StatusNoContent},
		{name: "mismatch", method: http.MethodPost, cookie: "abc", header: "xyz", want: http.StatusForbidden},
		{name: "no token", method: http.MethodPost, cookie: "abc", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.form != "" {
				body = strings.NewReader(url.Values{CSRFFormField: {tt.form}}.Encode())
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, "/buy/p1", body)
			if tt.form != "" {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: lib.CSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(CSRFHeaderName, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestSetupCORS_AllowsCSRFHeader(t *testing.T) {
	mw := newTestMiddleware(&structs.Config{
		Cors: structs.CorsConfig{
			AllowedOrigins: []string{"https://shop.example.com", " "},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Content-Type"},
		},
	})
	handler := mw.SetupCORS().Handler(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", CSRFHeaderName)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Errorf("unexpected allowed origin %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(strings.ToLower(got), strings.ToLower(CSRFHeaderName)) {
		t.Errorf("expected csrf header to be allowed, got %q", got)
	}
}

func TestRoutePattern(t *testing.T) {
	var seen string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			seen = routePattern(req)
		})
	})
	r.Post("/buy/{productId}", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/buy/p42", nil))

	if seen != "/buy/{productId}" {
		t.Errorf("expected route pattern, got %q", seen)
	}

	if got := routePattern(httptest.NewRequest(http.MethodGet, "/", nil)); got != unmatchedRoute {
		t.Errorf("expected %q without a chi context, got %q", unmatchedRoute, got)
	}
}

func TestSessionIDFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := SessionIDFromRequest(req); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}

	req.AddCookie(&http.Cookie{Name: lib.SessionCookieName, Value: "s-1"})
	if got := SessionIDFromRequest(req); got != "s-1" {
		t.Errorf("expected s-1, got %q", got)
	}
}
