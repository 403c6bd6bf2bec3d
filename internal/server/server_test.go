package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LondonTravel_Go/internal/alexa"
	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/identity"
	"github.com/osse101/LondonTravel_Go/internal/session"
	"github.com/osse101/LondonTravel_Go/internal/user"
)

const (
	testClientID    = "alexa-client"
	testRedirectURI = "https://layla.amazon.com/api/skill/link/M1ABCDEFGHIJ"
)

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close()                     {}

type routerFixture struct {
	router   http.Handler
	sessions *session.Manager
	repo     *user.FakeRepository
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()

	codec, err := session.NewCodec([]byte("router-test-signing-key"))
	require.NoError(t, err)
	sessions := session.NewManager(codec, time.Hour, false)

	repo := user.NewFakeRepository()
	users := user.NewService(repo, user.CacheConfig{Size: 10, TTL: time.Minute})
	linking := alexa.NewService(alexa.Options{
		IsLinkingEnabled: true,
		ClientID:         testClientID,
		RedirectURLs:     []string{testRedirectURI},
	}, users, alexa.NewAccessTokenGenerator(), nil)

	router := NewRouter(nil, Dependencies{
		DBPool:      stubPool{},
		Sessions:    sessions,
		Users:       users,
		Alexa:       linking,
		Providers:   identity.NewRegistry("http://localhost:8080", nil),
		ServiceName: "london-travel",
		Version:     "test",
	})

	return routerFixture{router: router, sessions: sessions, repo: repo}
}

func (f routerFixture) get(target string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, m := range mutate {
		m(req)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// signIn creates a user and returns its session cookie
func (f routerFixture) signIn(t *testing.T) *http.Cookie {
	t.Helper()
	u := &domain.User{
		FavoriteLines: []string{"jubilee"},
		Logins:        []domain.ExternalLogin{{Provider: domain.ProviderAmazon, ProviderUserID: "amzn-42"}},
	}
	require.NoError(t, f.repo.CreateUser(context.Background(), u))

	rec := httptest.NewRecorder()
	require.NoError(t, f.sessions.SetPrincipal(rec, domain.Principal{UserID: u.ID, Provider: domain.ProviderAmazon}))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func authorizeTarget() string {
	return "/alexa/authorize?" + url.Values{
		"state":         {"xyz"},
		"client_id":     {testClientID},
		"response_type": {"token"},
		"redirect_uri":  {testRedirectURI},
	}.Encode()
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics", "/api/lines", "/account/signin"} {
		rec := f.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType), path)
	}
}

func TestRouter_SignedInRoutesRedirectToSignIn(t *testing.T) {
	f := newRouterFixture(t)

	for _, target := range []string{authorizeTarget(), "/manage"} {
		rec := f.get(target)
		require.Equal(t, http.StatusFound, rec.Code, target)

		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, session.SignInPath, location.Path)
		assert.Equal(t, target, location.Query().Get(session.ReturnURLParam))
	}
}

func TestRouter_PreferencesRequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.get("/api/preferences")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestRouter_LinkAndReadPreferences(t *testing.T) {
	f := newRouterFixture(t)
	cookie := f.signIn(t)

	rec := f.get(authorizeTarget(), func(r *http.Request) { r.AddCookie(cookie) })
	require.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, testRedirectURI+"#state=xyz&access_token="), location)
	assert.True(t, strings.HasSuffix(location, "&token_type=Bearer"), location)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	fragment, err := url.ParseQuery(strings.SplitN(location, "#", 2)[1])
	require.NoError(t, err)
	token := fragment.Get("access_token")
	require.NotEmpty(t, token)

	rec = f.get("/api/preferences", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favoriteLines":["jubilee"]`)
}

func TestRouter_InvalidSessionCookieIsAnonymous(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.get("/manage", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "forged.value"})
	})

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRouter_ReadyzReportsDatabaseFailure(t *testing.T) {
	f := newRouterFixture(t)
	codec, err := session.NewCodec([]byte("key"))
	require.NoError(t, err)

	router := NewRouter(nil, Dependencies{
		DBPool:    stubPool{err: assert.AnError},
		Sessions:  session.NewManager(codec, time.Hour, false),
		Users:     user.NewService(f.repo, user.CacheConfig{}),
		Alexa:     alexa.NewService(alexa.Options{}, nil, nil, nil),
		Providers: identity.NewRegistry("", nil),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
