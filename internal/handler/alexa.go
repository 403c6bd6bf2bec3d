package handler

import (
	"net/http"

	"github.com/osse101/LondonTravel_Go/internal/alexa"
	"github.com/osse101/LondonTravel_Go/internal/logger"
	"github.com/osse101/LondonTravel_Go/internal/session"
)

// AlexaHandlers serves the Alexa account-linking endpoint
type AlexaHandlers struct {
	svc alexa.Service
}

// NewAlexaHandlers creates new Alexa handlers
func NewAlexaHandlers(svc alexa.Service) *AlexaHandlers {
	return &AlexaHandlers{svc: svc}
}

// HandleAuthorize handles GET /alexa/authorize
// @Summary Link an Alexa skill
// @Description Implicit-grant authorization for the Alexa skill. Issues a new access token for the signed-in user and redirects to redirect_uri with the token in the URL fragment.
// @Tags alexa
// @Param state query string false "Opaque value echoed back to the client"
// @Param client_id query string true "Alexa skill client ID"
// @Param response_type query string true "Must be token"
// @Param redirect_uri query string true "Allow-listed absolute redirect URI"
// @Success 302 "Redirect to redirect_uri with access_token or error in the fragment"
// @Failure 400 "redirect_uri is missing, relative or not allowed"
// @Failure 404 "Account linking is disabled"
// @Router /alexa/authorize [get]
func (h *AlexaHandlers) HandleAuthorize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := alexa.LinkingRequest{
			State:        q.Get(ParamState),
			ClientID:     q.Get(ParamClientID),
			ResponseType: q.Get(ParamResponseType),
			RedirectURI:  parseOptionalURI(q.Get(ParamRedirectURI)),
			Principal:    session.PrincipalFromContext(r.Context()),
		}

		logger.FromContext(r.Context()).Debug(LogMsgAlexaAuthorize,
			"client_id", req.ClientID,
			"response_type", req.ResponseType,
			"has_redirect_uri", req.RedirectURI != nil)

		out := h.svc.Authorize(r.Context(), req)
		if !writeOutcome(w, out) {
			logger.FromContext(r.Context()).Error(LogMsgUnknownOutcome, "kind", int(out.Kind))
		}
	}
}

// writeOutcome renders an authorization outcome. A cancelled request gets no response.
// It reports false when the outcome kind is not recognised and a 500 was written instead.
func writeOutcome(w http.ResponseWriter, out alexa.Outcome) bool {
	switch out.Kind {
	case alexa.OutcomeNotFound:
		w.WriteHeader(http.StatusNotFound)
	case alexa.OutcomeBadRequest:
		w.WriteHeader(http.StatusBadRequest)
	case alexa.OutcomeRedirect:
		w.Header().Set(HeaderCacheControl, CacheControlNone)
		w.Header().Set(HeaderLocation, out.URL)
		w.WriteHeader(http.StatusFound)
	case alexa.OutcomeCancelled:
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return false
	}
	return true
}
