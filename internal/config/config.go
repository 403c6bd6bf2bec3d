package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// PublicURL is the externally visible origin used to build OAuth callback URLs
	PublicURL      string
	SessionKey     string
	SessionTTL     time.Duration
	TrustedProxies []string

	UserCacheSize int
	UserCacheTTL  time.Duration

	ShutdownTimeout time.Duration

	Alexa     AlexaConfig
	Providers map[string]ProviderCredentials
}

// AlexaConfig configures the Alexa account-linking endpoint
type AlexaConfig struct {
	IsLinkingEnabled bool
	ClientID         string
	RedirectURLs     []string
}

// ProviderCredentials are the OAuth client credentials for one identity provider
type ProviderCredentials struct {
	ClientID     string
	ClientSecret string
}

// Enabled reports whether both halves of the credentials are present
func (p ProviderCredentials) Enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "londontravel"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		PublicURL:      strings.TrimRight(getEnv("PUBLIC_URL", DefaultPublicURL), "/"),
		SessionKey:     getEnv("SESSION_KEY", ""),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		UserCacheSize: getEnvAsInt("USER_CACHE_SIZE", DefaultUserCacheSize),
		UserCacheTTL:  getEnvAsDuration("USER_CACHE_TTL", DefaultUserCacheTTL),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		Alexa: AlexaConfig{
			IsLinkingEnabled: getEnvAsBool("ALEXA_LINKING_ENABLED", false),
			ClientID:         getEnv("ALEXA_CLIENT_ID", ""),
			RedirectURLs:     getEnvAsList("ALEXA_REDIRECT_URLS"),
		},
		Providers: make(map[string]ProviderCredentials, len(ProviderNames)),
	}

	for _, name := range ProviderNames {
		prefix := strings.ToUpper(name)
		cfg.Providers[name] = ProviderCredentials{
			ClientID:     getEnv(prefix+"_CLIENT_ID", ""),
			ClientSecret: getEnv(prefix+"_CLIENT_SECRET", ""),
		}
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.SessionKey == "" {
		return nil, fmt.Errorf("SESSION_KEY environment variable must be set for security")
	}
	if len(cfg.SessionKey) < MinSessionKeyLength {
		return nil, fmt.Errorf("SESSION_KEY must be at least %d characters", MinSessionKeyLength)
	}

	if cfg.Alexa.IsLinkingEnabled && cfg.Alexa.ClientID == "" {
		return nil, fmt.Errorf("ALEXA_CLIENT_ID must be set when ALEXA_LINKING_ENABLED is true")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// EnabledProviders returns the names of identity providers with credentials configured
func (c *Config) EnabledProviders() []string {
	var out []string
	for _, name := range ProviderNames {
		if c.Providers[name].Enabled() {
			out = append(out, name)
		}
	}
	return out
}

// IsSecure reports whether the site is served over HTTPS, in which case
// cookies are marked Secure
func (c *Config) IsSecure() bool {
	return strings.HasPrefix(strings.ToLower(c.PublicURL), "https://")
}
