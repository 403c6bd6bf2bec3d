package handler

import (
	"net/http"
	"time"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/session"
	"github.com/osse101/LondonTravel_Go/internal/user"
)

// ManageHandlers contains handlers for the signed-in user's account
type ManageHandlers struct {
	users    user.Service
	sessions *session.Manager
}

// NewManageHandlers creates new account management handlers
func NewManageHandlers(users user.Service, sessions *session.Manager) *ManageHandlers {
	return &ManageHandlers{users: users, sessions: sessions}
}

// ProfileResponse describes the signed-in user. The Alexa token itself is never returned.
type ProfileResponse struct {
	UserID          string                 `json:"userId"`
	Email           string                 `json:"email,omitempty"`
	GivenName       string                 `json:"givenName,omitempty"`
	Surname         string                 `json:"surname,omitempty"`
	ETag            string                 `json:"etag"`
	FavoriteLines   []string               `json:"favoriteLines"`
	IsLinkedToAlexa bool                   `json:"isLinkedToAlexa"`
	Logins          []domain.ExternalLogin `json:"logins"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// UpdateLinePreferencesRequest replaces the user's favorite lines
type UpdateLinePreferencesRequest struct {
	ETag          string   `json:"etag" validate:"required,uuid"`
	FavoriteLines []string `json:"favoriteLines" validate:"max=50,unique,dive,line"`
}

// ETagRequest carries the version of the user the change was made against
type ETagRequest struct {
	ETag string `json:"etag" validate:"required,uuid"`
}

func newProfileResponse(u *domain.User) ProfileResponse {
	lines := u.FavoriteLines
	if lines == nil {
		lines = []string{}
	}
	logins := u.Logins
	if logins == nil {
		logins = []domain.ExternalLogin{}
	}
	return ProfileResponse{
		UserID:          u.ID,
		Email:           u.Email,
		GivenName:       u.GivenName,
		Surname:         u.Surname,
		ETag:            u.ETag,
		FavoriteLines:   lines,
		IsLinkedToAlexa: u.IsLinkedToAlexa(),
		Logins:          logins,
		CreatedAt:       u.CreatedAt,
	}
}

// HandleGetProfile handles GET /manage
// @Summary Current account
// @Tags manage
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /manage [get]
func (h *ManageHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := h.users.GetCurrentUser(r.Context(), session.PrincipalFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProfileFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newProfileResponse(u))
	}
}

// HandleUpdateLinePreferences handles POST /manage/update-line-preferences
// @Summary Update favorite lines
// @Tags manage
// @Accept json
// @Produce json
// @Param request body UpdateLinePreferencesRequest true "New favorite lines"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /manage/update-line-preferences [post]
func (h *ManageHandlers) HandleUpdateLinePreferences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateLinePreferencesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update line preferences"); err != nil {
			return
		}

		principal := session.PrincipalFromContext(r.Context())
		u, err := h.users.SetFavoriteLines(r.Context(), principal, req.ETag, req.FavoriteLines)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdatePrefsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newProfileResponse(u))
	}
}

// HandleRemoveAlexaLink handles POST /manage/remove-alexa-link
// @Summary Unlink Alexa
// @Description Revokes the access token issued to the Alexa skill
// @Tags manage
// @Accept json
// @Produce json
// @Param request body ETagRequest true "Current account version"
// @Success 200 {object} ProfileResponse
// @Failure 409 {object} ErrorResponse
// @Router /manage/remove-alexa-link [post]
func (h *ManageHandlers) HandleRemoveAlexaLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ETagRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove Alexa link"); err != nil {
			return
		}

		u, err := h.users.RemoveAlexaLink(r.Context(), session.PrincipalFromContext(r.Context()), req.ETag)
		if err != nil {
			respondServiceError(w, r, ErrMsgRemoveAlexaFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newProfileResponse(u))
	}
}

// HandleDeleteAccount handles POST /manage/delete-account
// @Summary Delete account
// @Tags manage
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /manage/delete-account [post]
func (h *ManageHandlers) HandleDeleteAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.users.DeleteUser(r.Context(), session.PrincipalFromContext(r.Context())); err != nil {
			respondServiceError(w, r, ErrMsgDeleteAccountFailed, err)
			return
		}

		h.sessions.Clear(w)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAccountDeleted})
	}
}
