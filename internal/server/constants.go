package server

import (
	"time"

	"github.com/osse101/LondonTravel_Go/internal/metrics"
)

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Suspicious activity thresholds
const (
	FailedAuthAlertThreshold   = 5
	FailedAuthLockoutThreshold = 20
	RequestRateLimit           = 1000
	RateLimitLogEvery          = 100
	DetectorWindow             = 5 * time.Minute
)

// Server limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthLockedOut    = "Refusing bearer authentication from locked out client"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCSP            = "Content-Security-Policy"
)

// Security header values
const (
	HeaderValueNoSniff      = "nosniff"
	HeaderValueDeny         = "DENY"
	HeaderValueXSSBlock     = "1; mode=block"
	HeaderValueReferrerNone = "no-referrer"
	HeaderValueCSP          = "default-src 'self'; frame-ancestors 'none'; form-action 'self'"
)

// SwaggerPathPrefix serves the API documentation
const SwaggerPathPrefix = "/swagger/"

// Paths excluded from request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	metrics.ScrapePath,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
