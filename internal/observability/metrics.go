package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	PqrSubmissionsTotal *prometheus.CounterVec
	PhotoUploadsTotal   *prometheus.CounterVec
	AuthFailuresTotal   prometheus.Counter
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petcare_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "petcare_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		PqrSubmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petcare_pqr_submissions_total",
				Help: "Public PQR submissions by outcome",
			},
			[]string{"outcome"},
		),
		PhotoUploadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petcare_pet_photo_uploads_total",
				Help: "Pet photo uploads by outcome",
			},
			[]string{"outcome"},
		),
		AuthFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "petcare_auth_failures_total",
				Help: "Failed login attempts",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PqrSubmissionsTotal,
		m.PhotoUploadsTotal,
		m.AuthFailuresTotal,
	)

	return m
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
