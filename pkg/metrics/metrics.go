// Package metrics provides Prometheus metrics for the training portal API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus collectors for the service.
type Manager struct {
	registry prometheus.Registerer

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	rosterFetches     prometheus.Counter
	rosterFetchErrors prometheus.Counter
	rosterCacheHits   prometheus.Counter

	calendarFetches     prometheus.Counter
	calendarFetchErrors prometheus.Counter

	emailsSent   prometheus.Counter
	emailsFailed prometheus.Counter
}

var globalManager *Manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry()

func init() {
	globalManager = NewManager(customRegistry)
}

func NewManager(registry prometheus.Registerer) *Manager {
	m := &Manager{registry: registry}

	auto := promauto.With(registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nss",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nss",
			Subsystem: "api",
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.rosterFetches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "nss",
		Subsystem: "roster",
		Name:      "sheet_fetches_total",
		Help:      "Total number of roster spreadsheet fetches",
	})

	m.rosterFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "nss",
		Subsystem: "roster",
		Name:      "sheet_fetch_errors_total",
		Help:      "Total number of failed roster spreadsheet fetches",
	})

	m.rosterCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "nss",
		Subsystem: "roster",
		Name:      "cache_hits_total",
		Help:      "Total number of roster requests served from the cache",
	})

	m.calendarFetches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "nss",
		Subsystem: "calendar",
		Name:      "proxy_fetches_total",
		Help:      "Total number of calendar proxy fetches",
	})

	m.calendarFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "nss",
		Subsystem: "calendar",
		Name:      "proxy_fetch_errors_total",
		Help:      "Total number of calendar proxy fetches that degraded to an empty month",
	})

	m.emailsSent = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "nss",
		Subsystem: "mail",
		Name:      "emails_sent_total",
		Help:      "Total number of notification emails delivered",
	})

	m.emailsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: "nss",
		Subsystem: "mail",
		Name:      "emails_failed_total",
		Help:      "Total number of notification emails that could not be delivered",
	})

	return m
}

// RecordHTTPRequest records one handled request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records a request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

func RecordRosterFetch()      { globalManager.rosterFetches.Inc() }
func RecordRosterFetchError() { globalManager.rosterFetchErrors.Inc() }
func RecordRosterCacheHit()   { globalManager.rosterCacheHits.Inc() }

func RecordCalendarFetch()      { globalManager.calendarFetches.Inc() }
func RecordCalendarFetchError() { globalManager.calendarFetchErrors.Inc() }

func RecordEmailSent()   { globalManager.emailsSent.Inc() }
func RecordEmailFailed() { globalManager.emailsFailed.Inc() }

// GetRegistry returns the registry backing the /metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
