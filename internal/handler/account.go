package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/identity"
	"github.com/osse101/LondonTravel_Go/internal/logger"
	"github.com/osse101/LondonTravel_Go/internal/session"
	"github.com/osse101/LondonTravel_Go/internal/user"
)

// IdentityProviders looks up the configured external identity providers
type IdentityProviders interface {
	Get(name string) (identity.Provider, error)
	Names() []string
}

// AccountHandlers contains handlers for external sign-in
type AccountHandlers struct {
	providers IdentityProviders
	users     user.SignInService
	sessions  *session.Manager
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(providers IdentityProviders, users user.SignInService, sessions *session.Manager) *AccountHandlers {
	return &AccountHandlers{providers: providers, users: users, sessions: sessions}
}

// SignInOptionsResponse lists the ways a user can sign in
type SignInOptionsResponse struct {
	Providers []string `json:"providers"`
	ReturnURL string   `json:"returnUrl"`
	SignedIn  bool     `json:"signedIn"`
}

// HandleSignInOptions handles GET /account/signin
// @Summary Sign-in options
// @Description Lists the identity providers a user can sign in with
// @Tags account
// @Produce json
// @Param returnUrl query string false "Local path to return to after sign-in"
// @Success 200 {object} SignInOptionsResponse
// @Router /account/signin [get]
func (h *AccountHandlers) HandleSignInOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, SignInOptionsResponse{
			Providers: h.providers.Names(),
			ReturnURL: session.SanitizeReturnURL(r.URL.Query().Get(session.ReturnURLParam)),
			SignedIn:  session.PrincipalFromContext(r.Context()).IsAuthenticated(),
		})
	}
}

// HandleSignIn handles GET /account/signin/{provider}
// @Summary Start external sign-in
// @Description Redirects to the identity provider's consent page
// @Tags account
// @Param provider path string true "Identity provider"
// @Param returnUrl query string false "Local path to return to after sign-in"
// @Success 302 "Redirect to the identity provider"
// @Failure 404 {object} ErrorResponse
// @Router /account/signin/{provider} [get]
func (h *AccountHandlers) HandleSignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider, err := h.providers.Get(chi.URLParam(r, ParamProvider))
		if err != nil {
			respondServiceError(w, r, ErrMsgSignInFailed, err)
			return
		}

		state := session.SignInState{
			Provider:  provider.Name(),
			State:     uuid.NewString(),
			Verifier:  identity.GenerateVerifier(),
			ReturnURL: session.SanitizeReturnURL(r.URL.Query().Get(session.ReturnURLParam)),
		}
		if err := h.sessions.SetSignInState(w, state); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgSessionWriteFailed, "error", err)
			respondError(w, r, http.StatusInternalServerError, ErrMsgSessionWriteFailed)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSignInStarted, "provider", provider.Name())
		http.Redirect(w, r, provider.AuthCodeURL(state.State, state.Verifier), http.StatusFound)
	}
}

// HandleCallback handles GET /account/callback/{provider}
// @Summary Complete external sign-in
// @Description Exchanges the authorization code, signs the user in and returns to the original page
// @Tags account
// @Param provider path string true "Identity provider"
// @Param code query string false "Authorization code"
// @Param state query string true "State issued when sign-in started"
// @Success 302 "Redirect to the return URL"
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /account/callback/{provider} [get]
func (h *AccountHandlers) HandleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		q := r.URL.Query()
		name := chi.URLParam(r, ParamProvider)

		state, err := h.sessions.TakeSignInState(w, r)
		if err != nil || state.Provider != name ||
			subtle.ConstantTimeCompare([]byte(state.State), []byte(q.Get(ParamState))) != 1 {
			log.Warn(LogMsgSignInStateInvalid, "provider", name, "error", err)
			respondError(w, r, http.StatusBadRequest, ErrMsgSignInStateMismatch)
			return
		}

		if providerErr := q.Get(ParamError); providerErr != "" {
			log.Warn(LogMsgProviderError, "provider", name,
				"error", providerErr, "description", q.Get(ParamErrorDesc))
			respondError(w, r, http.StatusBadRequest, ErrMsgProviderDenied)
			return
		}

		provider, err := h.providers.Get(name)
		if err != nil {
			respondServiceError(w, r, ErrMsgSignInFailed, err)
			return
		}

		profile, err := provider.Exchange(r.Context(), q.Get(ParamCode), state.Verifier)
		if err != nil {
			log.Error(LogMsgExchangeFailed, "provider", name, "error", err)
			respondError(w, r, http.StatusBadRequest, ErrMsgSignInFailed)
			return
		}

		current := session.PrincipalFromContext(r.Context())
		u, err := h.users.SignIn(r.Context(), current, *profile)
		if err != nil {
			respondServiceError(w, r, ErrMsgSignInFailed, err)
			return
		}

		principal := domain.Principal{UserID: u.ID, Provider: profile.Provider, DisplayName: profile.DisplayName}
		if err := h.sessions.SetPrincipal(w, principal); err != nil {
			log.Error(LogMsgSessionWriteFailed, "error", err)
			respondError(w, r, http.StatusInternalServerError, ErrMsgSessionWriteFailed)
			return
		}

		http.Redirect(w, r, session.SanitizeReturnURL(state.ReturnURL), http.StatusFound)
	}
}

// HandleSignOut handles POST /account/signout
// @Summary Sign out
// @Tags account
// @Success 302 "Redirect to the home page"
// @Router /account/signout [post]
func (h *AccountHandlers) HandleSignOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.Clear(w)
		logger.FromContext(r.Context()).Info(LogMsgSignedOut)
		http.Redirect(w, r, session.DefaultReturnURL, http.StatusFound)
	}
}
