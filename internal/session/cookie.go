package session

import (
	"net/http"
	"time"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// SignInState is kept in a short-lived cookie during an external sign-in
type SignInState struct {
	Provider  string `json:"p"`
	State     string `json:"st"`
	Verifier  string `json:"v"`
	ReturnURL string `json:"r,omitempty"`
}

// Manager issues and reads the session and sign-in cookies
type Manager struct {
	codec  *Codec
	ttl    time.Duration
	secure bool
}

// NewManager creates a cookie manager. Cookies are marked Secure when secure is set.
func NewManager(codec *Codec, ttl time.Duration, secure bool) *Manager {
	return &Manager{codec: codec, ttl: ttl, secure: secure}
}

// SetPrincipal writes the session cookie for principal
func (m *Manager) SetPrincipal(w http.ResponseWriter, principal domain.Principal) error {
	value, err := m.codec.Encode(principal, m.ttl)
	if err != nil {
		return err
	}
	m.setCookie(w, CookieName, value, m.ttl)
	return nil
}

// Principal reads the session cookie. The zero Principal is returned when
// there is no valid session.
func (m *Manager) Principal(r *http.Request) (domain.Principal, error) {
	var p domain.Principal
	c, err := r.Cookie(CookieName)
	if err != nil {
		return p, nil
	}
	if err := m.codec.Decode(c.Value, &p); err != nil {
		return domain.Principal{}, err
	}
	return p, nil
}

// Clear removes the session cookie
func (m *Manager) Clear(w http.ResponseWriter) {
	m.clearCookie(w, CookieName)
}

// SetSignInState stores the state of an external sign-in round trip
func (m *Manager) SetSignInState(w http.ResponseWriter, state SignInState) error {
	value, err := m.codec.Encode(state, SignInTTL)
	if err != nil {
		return err
	}
	m.setCookie(w, SignInCookieName, value, SignInTTL)
	return nil
}

// TakeSignInState reads and clears the sign-in cookie
func (m *Manager) TakeSignInState(w http.ResponseWriter, r *http.Request) (SignInState, error) {
	var state SignInState
	c, err := r.Cookie(SignInCookieName)
	if err != nil {
		return state, ErrInvalidCookie
	}
	m.clearCookie(w, SignInCookieName)

	if err := m.codec.Decode(c.Value, &state); err != nil {
		return SignInState{}, err
	}
	return state, nil
}

func (m *Manager) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
