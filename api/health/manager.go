package health

import (
	"storefront/services"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionProbeTimeout = 2 * time.Second

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request latency per route pattern",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests served per route pattern",
		},
		[]string{"method", "route", "status"},
	)

	HttpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests currently being served",
		},
	)

	registerOnce sync.Once
)

type HealthRoutesManager struct {
	logger        *gecho.Logger
	healthService *services.HealthService
}

func NewHealthRoutesManager(logger *gecho.Logger, healthService *services.HealthService) *HealthRoutesManager {
	return &HealthRoutesManager{
		logger:        logger,
		healthService: healthService,
	}
}

func (hrm *HealthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/health", func(r chi.Router) {
		r.Get("/server", hrm.GetServerHealth)
		r.Get("/sessions", hrm.GetSessionStoreHealth)
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	registerMetrics()
}

// registerMetrics puts the http and order collectors on the default registry.
// The router is built once per test, so registration is guarded.
func registerMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HttpDuration,
			HttpRequests,
			HttpInFlight,
			services.OrderSubmissions,
			services.OrdersInFlight,
			services.CatalogFetches,
		)
	})
}
