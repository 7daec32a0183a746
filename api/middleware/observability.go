package middleware

import (
	"net/http"
	"storefront/api/health"
	"strconv"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	RequestIDHeader = "X-Request-ID"
	unmatchedRoute  = "unmatched"
)

// SetupLoggerMiddleware logs every request through the middleware logger and
// echoes chi's request id so a browser report can be matched to the log line.
func (mw *Middleware) SetupLoggerMiddleware() func(http.Handler) http.Handler {
	logRequests := gecho.Handlers.CreateLoggingMiddleware(mw.logger)

	return func(next http.Handler) http.Handler {
		logged := logRequests(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := middleware.GetReqID(r.Context()); id != "" {
				w.Header().Set(RequestIDHeader, id)
			}
			logged.ServeHTTP(w, r)
		})
	}
}

// MetricsMiddleware records request counts and latency labelled by route
// pattern, so /buy/{productId} stays a single series.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		health.HttpInFlight.Inc()
		defer health.HttpInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		labels := prometheus.Labels{
			"method": r.Method,
			"route":  routePattern(r),
			"status": strconv.Itoa(status),
		}

		health.HttpRequests.With(labels).Inc()
		health.HttpDuration.With(labels).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
