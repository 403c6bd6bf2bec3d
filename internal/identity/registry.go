package identity

import (
	"log/slog"
	"sort"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/osse101/LondonTravel_Go/internal/config"
	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// Registry holds the configured identity providers by name
type Registry struct {
	providers map[string]Provider
}

type providerSpec struct {
	endpoint   oauth2.Endpoint
	scopes     []string
	profileURL string
	mapProfile profileMapper
}

var specs = map[string]providerSpec{
	domain.ProviderAmazon: {
		endpoint:   endpoints.Amazon,
		scopes:     []string{"profile"},
		profileURL: AmazonProfileURL,
		mapProfile: mapAmazon,
	},
	domain.ProviderFacebook: {
		endpoint:   endpoints.Facebook,
		scopes:     []string{"public_profile", "email"},
		profileURL: FacebookProfileURL,
		mapProfile: mapFacebook,
	},
	domain.ProviderGitHub: {
		endpoint:   endpoints.GitHub,
		scopes:     []string{"read:user", "user:email"},
		profileURL: GitHubProfileURL,
		mapProfile: mapGitHub,
	},
	domain.ProviderGoogle: {
		endpoint:   endpoints.Google,
		scopes:     []string{"openid", "email", "profile"},
		profileURL: GoogleProfileURL,
		mapProfile: mapGoogle,
	},
	domain.ProviderMicrosoft: {
		endpoint:   endpoints.Microsoft,
		scopes:     []string{"User.Read"},
		profileURL: MicrosoftProfileURL,
		mapProfile: mapMicrosoft,
	},
	domain.ProviderTwitter: {
		endpoint: oauth2.Endpoint{
			AuthURL:   TwitterAuthURL,
			TokenURL:  TwitterTokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		scopes:     []string{"users.read", "tweet.read"},
		profileURL: TwitterProfileURL,
		mapProfile: mapTwitter,
	},
}

// NewRegistry registers every provider with complete credentials.
// Callback URLs are built from publicURL.
func NewRegistry(publicURL string, creds map[string]config.ProviderCredentials) *Registry {
	r := &Registry{providers: make(map[string]Provider)}

	for name, c := range creds {
		spec, ok := specs[name]
		if !ok || !c.Enabled() {
			continue
		}
		r.Register(&oauthProvider{
			name: name,
			config: &oauth2.Config{
				ClientID:     c.ClientID,
				ClientSecret: c.ClientSecret,
				RedirectURL:  publicURL + CallbackPathPrefix + name,
				Endpoint:     spec.endpoint,
				Scopes:       spec.scopes,
			},
			profileURL: spec.profileURL,
			mapProfile: spec.mapProfile,
		})
		slog.Default().Info(LogMsgProviderRegistered, "provider", name)
	}

	if len(r.providers) == 0 {
		slog.Default().Warn(LogMsgNoProviders)
	}
	return r
}

// Register adds or replaces a provider
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Get returns the named provider
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, domain.ErrUnknownProvider
	}
	return p, nil
}

// Names returns the registered provider names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
