package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RoutesProcessed *prometheus.CounterVec
	APIErrors       prometheus.Counter
	RequestSeconds  *prometheus.HistogramVec
	ActiveWorkers   prometheus.Gauge
	RouteMeters     prometheus.Histogram
	HTTPRequests    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RoutesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "meridian_routes_processed_total",
			Help: "Total number of processed routes.",
		}, []string{"status"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "meridian_geocoding_api_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meridian_geocoding_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "meridian_active_workers",
			Help: "Current number of active workers measuring routes.",
		}),
		RouteMeters: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name: "meridian_route_distance_meters",
			Help: "Great-circle distance of measured routes.",
			// 100 m up to ~26 000 km.
			Buckets: prometheus.ExponentialBuckets(100, 4, 10),
		}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "meridian_http_requests_total",
			Help: "Total number of API requests by handler and status code.",
		}, []string{"handler", "code"}),
	}
}
