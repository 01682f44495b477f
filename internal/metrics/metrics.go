package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shinkai_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shinkai_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	ItineraryBuildsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "itinerary_builds_total",
		Help: "Itinerary requests by memo cache outcome",
	}, []string{"cache"})
	ItineraryBuildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "itinerary_build_duration_seconds",
		Help:    "Time spent in the itinerary builder",
		Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
	})
	ItineraryOverflowSpots = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "itinerary_overflow_spots",
		Help:    "Spots left unscheduled per generated itinerary",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(ItineraryBuildsTotal)
	prometheus.MustRegister(ItineraryBuildDuration)
	prometheus.MustRegister(ItineraryOverflowSpots)
}

const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Handler exposes the default registry for scraping.
func Handler() http.Handler { return promhttp.Handler() }
