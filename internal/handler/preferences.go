package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/logger"
	"github.com/osse101/LondonTravel_Go/internal/metrics"
	"github.com/osse101/LondonTravel_Go/internal/user"
)

// PreferencesResponse is returned by the preferences API
type PreferencesResponse struct {
	UserID        string   `json:"userId"`
	FavoriteLines []string `json:"favoriteLines"`
}

// HandleGetPreferences handles GET /api/preferences
// @Summary Get a user's preferences
// @Description Returns the favorite lines of the user an Alexa access token was issued to
// @Tags api
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Success 200 {object} PreferencesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/preferences [get]
func HandleGetPreferences(svc user.PreferencesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, detail := bearerToken(r.Header.Get(HeaderAuthorization))
		if token == "" {
			log.Info(LogMsgPreferencesUnauthorized, "reason", detail)
			respondUnauthorized(w, r, detail)
			return
		}

		u, err := svc.FindByAlexaToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				log.Info(LogMsgPreferencesUnauthorized, "reason", "unknown token")
				respondUnauthorized(w, r, "")
				return
			}
			log.Error(LogMsgPreferencesLookupFailed, "error", err)
			respondError(w, r, http.StatusInternalServerError, ErrMsgGetPreferencesFailed)
			return
		}

		metrics.PreferencesRequestsTotal.WithLabelValues(metrics.OutcomeAuthorized).Inc()

		lines := u.FavoriteLines
		if lines == nil {
			lines = []string{}
		}
		respondJSON(w, http.StatusOK, PreferencesResponse{
			UserID:        u.ID,
			FavoriteLines: lines,
		})
	}
}

// bearerToken extracts the token from an Authorization header value.
// When no token can be extracted the second value explains why.
func bearerToken(header string) (string, string) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMsgNoAccessToken
	}

	scheme, param, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, BearerScheme) {
		return "", ErrMsgBearerSchemeRequired
	}

	param = strings.TrimSpace(param)
	if param == "" {
		return "", ErrMsgNoAccessToken
	}
	return param, ""
}

func respondUnauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	metrics.PreferencesRequestsTotal.WithLabelValues(metrics.OutcomeUnauthorized).Inc()
	w.Header().Set(HeaderWWWAuthenticate, BearerScheme)

	if detail == "" {
		respondError(w, r, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}
	respondError(w, r, http.StatusUnauthorized, ErrMsgUnauthorized, detail)
}

// LineResponse describes a line in the catalog
type LineResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mode string `json:"mode"`
}

// HandleGetLines handles GET /api/lines
// @Summary List lines
// @Description Returns the lines that can be chosen as favorites
// @Tags api
// @Produce json
// @Success 200 {array} LineResponse
// @Router /api/lines [get]
func HandleGetLines() http.HandlerFunc {
	catalog := domain.Lines()
	lines := make([]LineResponse, 0, len(catalog))
	for _, l := range catalog {
		lines = append(lines, LineResponse{ID: l.ID, Name: l.Name, Mode: l.Mode})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, lines)
	}
}
