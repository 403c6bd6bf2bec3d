package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPResponseSize,
			Help:    HelpTextHTTPResponseSize,
			Buckets: HTTPResponseSizeBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Account linking metrics
var (
	AlexaLinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAlexaLinksTotal,
			Help: HelpTextAlexaLinksTotal,
		},
		[]string{LabelKind},
	)

	AlexaLinkFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAlexaLinkFailuresTotal,
			Help: HelpTextAlexaLinkFailuresTotal,
		},
		[]string{LabelReason},
	)

	TelemetryDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTelemetryDroppedTotal,
			Help: HelpTextTelemetryDroppedTotal,
		},
	)
)

// User metrics
var (
	SignInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSignInsTotal,
			Help: HelpTextSignInsTotal,
		},
		[]string{LabelProvider},
	)

	PreferencesRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePreferencesRequests,
			Help: HelpTextPreferencesRequests,
		},
		[]string{LabelOutcome},
	)

	UserCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUserCacheLookups,
			Help: HelpTextUserCacheLookups,
		},
		[]string{LabelResult},
	)
)
