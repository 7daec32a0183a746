package services

import "github.com/prometheus/client_golang/prometheus"

var (
	OrderSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "submissions_total",
			Help:      "Order submissions by final state and failure reason",
		},
		[]string{"outcome", "reason"},
	)

	OrdersInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "in_flight",
			Help:      "Order submissions that have not reached a final state",
		},
	)

	CatalogFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "catalog",
			Name:      "fetches_total",
			Help:      "Catalog reads by outcome",
		},
		[]string{"outcome"},
	)
)
