package bootstrap

import (
	"fmt"

	"github.com/osse101/LondonTravel_Go/internal/alexa"
	"github.com/osse101/LondonTravel_Go/internal/config"
	"github.com/osse101/LondonTravel_Go/internal/identity"
	"github.com/osse101/LondonTravel_Go/internal/session"
	"github.com/osse101/LondonTravel_Go/internal/telemetry"
	"github.com/osse101/LondonTravel_Go/internal/user"
)

// Services holds the application services built on top of the repositories
type Services struct {
	Users     user.Service
	Alexa     alexa.Service
	Telemetry *telemetry.Sink
	Sessions  *session.Manager
	Providers *identity.Registry
}

// InitializeServices wires the services from configuration and repositories.
// The returned telemetry sink must be shut down by the caller.
func InitializeServices(cfg *config.Config, repos *Repositories) (*Services, error) {
	codec, err := session.NewCodec([]byte(cfg.SessionKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSessionKey, err)
	}

	users := user.NewService(repos.User, user.CacheConfig{
		Size: cfg.UserCacheSize,
		TTL:  cfg.UserCacheTTL,
	})
	sink := telemetry.NewSink(TelemetryBufferSize)

	linking := alexa.NewService(alexa.Options{
		IsLinkingEnabled: cfg.Alexa.IsLinkingEnabled,
		ClientID:         cfg.Alexa.ClientID,
		RedirectURLs:     cfg.Alexa.RedirectURLs,
	}, users, alexa.NewAccessTokenGenerator(), sink)

	return &Services{
		Users:     users,
		Alexa:     linking,
		Telemetry: sink,
		Sessions:  session.NewManager(codec, cfg.SessionTTL, cfg.IsSecure()),
		Providers: identity.NewRegistry(cfg.PublicURL, cfg.Providers),
	}, nil
}
