package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be present before the site starts
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"SESSION_KEY",
	"PUBLIC_URL",
}

// Example values shipped in the sample .env
const (
	exampleDBPassword = "change_this_secure_password"
	exampleSessionKey = "generate_with_devtool_gen_session_key"
)

// envWarning flags a configuration that starts but is probably not what was meant
type envWarning struct {
	applies func() bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: func() bool { return os.Getenv("DB_PASSWORD") == exampleDBPassword },
		message: "DB_PASSWORD appears to be using the example value - please use a secure password",
	},
	{
		applies: func() bool { return os.Getenv("SESSION_KEY") == exampleSessionKey },
		message: "SESSION_KEY appears to be using the example value - generate one with: go run ./cmd/devtool gen-session-key",
	},
	{
		applies: func() bool {
			return strings.EqualFold(os.Getenv("ALEXA_LINKING_ENABLED"), "true") && os.Getenv("ALEXA_REDIRECT_URLS") == ""
		},
		message: "ALEXA_REDIRECT_URLS is empty - any absolute redirect URI will be accepted for Alexa linking",
	},
	{
		applies: func() bool {
			return os.Getenv("ENVIRONMENT") == logger.EnvironmentProduction && !strings.HasPrefix(os.Getenv("PUBLIC_URL"), "https://")
		},
		message: "PUBLIC_URL is not https in production - session cookies will not be marked Secure",
	},
}

// ValidateEnv checks the schema version, required variables and the shape
// of values that cannot be defaulted
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if u, err := url.Parse(os.Getenv("PUBLIC_URL")); err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("PUBLIC_URL must be an absolute URL such as https://londontravel.example.com")
	}

	return nil
}

// ValidateEnvWithWarnings validates the environment and reports settings
// that are legal but suspicious
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies() {
			warnings = append(warnings, w.message)
		}
	}

	// A provider with only one half of its credentials is silently disabled
	for _, name := range ProviderNames {
		prefix := strings.ToUpper(name)
		id, secret := os.Getenv(prefix+"_CLIENT_ID"), os.Getenv(prefix+"_CLIENT_SECRET")
		if (id == "") != (secret == "") {
			warnings = append(warnings, fmt.Sprintf("%s sign-in is disabled - set both %s_CLIENT_ID and %s_CLIENT_SECRET", name, prefix, prefix))
		}
	}

	return warnings, nil
}
