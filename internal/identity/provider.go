package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// Provider is an external OAuth2 identity provider
type Provider interface {
	// Name returns the provider identifier used in URLs and stored logins
	Name() string

	// AuthCodeURL returns the consent page URL with state and a PKCE challenge for verifier
	AuthCodeURL(state, verifier string) string

	// Exchange trades an authorization code for the user's profile
	Exchange(ctx context.Context, code, verifier string) (*domain.ExternalProfile, error)
}

// profileMapper turns a provider's profile response into an ExternalProfile
type profileMapper func(body []byte) (domain.ExternalProfile, error)

// oauthProvider implements Provider for providers with a JSON profile endpoint
type oauthProvider struct {
	name       string
	config     *oauth2.Config
	profileURL string
	mapProfile profileMapper
}

func (p *oauthProvider) Name() string { return p.name }

func (p *oauthProvider) AuthCodeURL(state, verifier string) string {
	return p.config.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

func (p *oauthProvider) Exchange(ctx context.Context, code, verifier string) (*domain.ExternalProfile, error) {
	token, err := p.config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", p.name, ErrMsgExchangeFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, ProfileTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", p.name, ErrMsgProfileRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", p.name, ErrMsgProfileRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s %d", p.name, ErrMsgProfileStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", p.name, ErrMsgProfileRequest, err)
	}

	profile, err := p.mapProfile(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", p.name, ErrMsgProfileDecode, err)
	}
	if profile.ProviderUserID == "" {
		return nil, fmt.Errorf("%s: %s", p.name, ErrMsgProfileNoUserID)
	}

	profile.Provider = p.name
	return &profile, nil
}

// GenerateVerifier returns a new PKCE code verifier
func GenerateVerifier() string {
	return oauth2.GenerateVerifier()
}
