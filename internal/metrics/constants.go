package metrics

import "github.com/prometheus/client_golang/prometheus"

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPResponseSize     = "http_response_size_bytes"
)

// Account linking metric names
const (
	MetricNameAlexaLinksTotal        = "alexa_links_total"
	MetricNameAlexaLinkFailuresTotal = "alexa_link_failures_total"
	MetricNameTelemetryDroppedTotal  = "telemetry_events_dropped_total"
)

// User metric names
const (
	MetricNameSignInsTotal        = "account_signins_total"
	MetricNamePreferencesRequests = "api_preferences_requests_total"
	MetricNameUserCacheLookups    = "user_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPResponseSize     = "HTTP response body size in bytes"
)

// Account linking metric help text
const (
	HelpTextAlexaLinksTotal        = "Total number of Alexa access tokens issued"
	HelpTextAlexaLinkFailuresTotal = "Total number of failed Alexa account linking attempts"
	HelpTextTelemetryDroppedTotal  = "Total number of telemetry events dropped because the queue was full"
)

// User metric help text
const (
	HelpTextSignInsTotal        = "Total number of external sign-ins"
	HelpTextPreferencesRequests = "Total number of preferences API requests"
	HelpTextUserCacheLookups    = "Total number of user cache lookups"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelKind     = "kind"
	LabelReason   = "reason"
	LabelProvider = "provider"
	LabelOutcome  = "outcome"
	LabelResult   = "result"
)

// Label values
const (
	KindCreated     = "created"
	KindRegenerated = "regenerated"

	OutcomeAuthorized   = "authorized"
	OutcomeUnauthorized = "unauthorized"

	ResultHit  = "hit"
	ResultMiss = "miss"

	// UnmatchedRoute labels requests that did not match a route
	UnmatchedRoute = "unmatched"
)

// ScrapePath is where Prometheus collects metrics
const ScrapePath = "/metrics"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// HTTPResponseSizeBuckets spans empty redirects up to the swagger UI assets
var HTTPResponseSizeBuckets = prometheus.ExponentialBuckets(64, 4, 8)
