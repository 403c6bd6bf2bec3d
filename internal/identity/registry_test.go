package identity

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LondonTravel_Go/internal/config"
	"github.com/osse101/LondonTravel_Go/internal/domain"
)

func TestNewRegistry(t *testing.T) {
	creds := map[string]config.ProviderCredentials{
		domain.ProviderGoogle:    {ClientID: "g-id", ClientSecret: "g-secret"},
		domain.ProviderAmazon:    {ClientID: "a-id", ClientSecret: "a-secret"},
		domain.ProviderMicrosoft: {ClientID: "m-id"},
		"myspace":                {ClientID: "x", ClientSecret: "y"},
	}

	r := NewRegistry("https://londontravel.example.com", creds)

	assert.Equal(t, []string{domain.ProviderAmazon, domain.ProviderGoogle}, r.Names())

	_, err := r.Get(domain.ProviderMicrosoft)
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
	_, err = r.Get("myspace")
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestNewRegistry_Empty(t *testing.T) {
	r := NewRegistry("", nil)

	assert.Empty(t, r.Names())
	_, err := r.Get(domain.ProviderGoogle)
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestRegistry_AuthCodeURL(t *testing.T) {
	r := NewRegistry("https://londontravel.example.com", map[string]config.ProviderCredentials{
		domain.ProviderGitHub: {ClientID: "gh-id", ClientSecret: "gh-secret"},
	})

	p, err := r.Get(domain.ProviderGitHub)
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderGitHub, p.Name())

	raw := p.AuthCodeURL("the-state", GenerateVerifier())
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "the-state", q.Get("state"))
	assert.Equal(t, "gh-id", q.Get("client_id"))
	assert.Equal(t, "https://londontravel.example.com/account/callback/github", q.Get("redirect_uri"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
}

func TestGenerateVerifier(t *testing.T) {
	a, b := GenerateVerifier(), GenerateVerifier()
	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 43)
}
