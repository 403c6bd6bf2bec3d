package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "london-travel"
	DefaultVersion     = "dev"
)

// Environment String Values
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
	EnvironmentTest        = "test"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
)

// RedactedValue replaces credential attribute values
const RedactedValue = "[REDACTED]"

// sensitiveKeys are attribute keys whose values are always redacted
var sensitiveKeys = map[string]struct{}{
	"access_token":  {},
	"token":         {},
	"authorization": {},
	"cookie":        {},
	"auth_code":     {},
	"client_secret": {},
	"session_key":   {},
}
