package config

import "time"

// Defaults applied when the corresponding environment variable is unset
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "london-travel"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultPublicURL   = "http://localhost:8080"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour

	DefaultSessionTTL      = 14 * 24 * time.Hour
	DefaultUserCacheSize   = 1000
	DefaultUserCacheTTL    = 5 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// MinSessionKeyLength is the minimum length of the cookie signing key
const MinSessionKeyLength = 32

// ProviderNames lists the identity providers the site can be configured with
var ProviderNames = []string{
	"amazon",
	"facebook",
	"github",
	"google",
	"microsoft",
	"twitter",
}
