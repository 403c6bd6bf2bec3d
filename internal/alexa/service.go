package alexa

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// Options configures Alexa account linking
type Options struct {
	IsLinkingEnabled bool
	ClientID         string
	RedirectURLs     []string
}

// LinkingRequest carries the parameters of an authorization request
type LinkingRequest struct {
	State        string
	ClientID     string
	ResponseType string
	// RedirectURI is nil when the parameter was absent or could not be parsed
	RedirectURI *url.URL
	Principal   domain.Principal
}

// UserStore resolves and persists the user being linked
type UserStore interface {
	GetCurrentUser(ctx context.Context, principal domain.Principal) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) domain.UpdateResult
}

// Telemetry records account-linking events
type Telemetry interface {
	TrackLinkCreated(ctx context.Context, userID string)
	TrackLinkRegenerated(ctx context.Context, userID string)
	TrackLinkFailure(ctx context.Context, userID, reason string)
}

// Service runs the Alexa implicit-grant authorization flow
type Service interface {
	Authorize(ctx context.Context, req LinkingRequest) Outcome
}

type service struct {
	opts      Options
	users     UserStore
	tokens    TokenGenerator
	redirects *RedirectURIValidator
	telemetry Telemetry
}

// NewService creates a new account-linking service
func NewService(opts Options, users UserStore, tokens TokenGenerator, telemetry Telemetry) Service {
	return &service{
		opts:      opts,
		users:     users,
		tokens:    tokens,
		redirects: NewRedirectURIValidator(opts.RedirectURLs),
		telemetry: telemetry,
	}
}

// Authorize validates the request, issues a new access token for the current
// user and returns where to send the browser.
func (s *service) Authorize(ctx context.Context, req LinkingRequest) (outcome Outcome) {
	log := logger.FromContext(ctx)

	if !s.opts.IsLinkingEnabled {
		log.Info(LogMsgLinkingDisabled)
		return NotFound()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgUnexpectedFailure, "panic", fmt.Sprint(r))
			s.trackFailure(ctx, req.Principal.UserID, FailureReasonUnexpected)
			outcome = errorRedirect(req.RedirectURI, req.State, ErrorServerError)
		}
	}()

	// Request errors go to the supplied redirect URI before it has been checked
	if code, ok := ValidateRequest(req.ClientID, req.ResponseType, s.opts.ClientID); !ok {
		log.Warn(LogMsgInvalidRequest, "error_code", string(code))
		return errorRedirect(req.RedirectURI, req.State, code)
	}

	if !s.redirects.Validate(ctx, req.RedirectURI) {
		return BadRequest()
	}

	user, err := s.users.GetCurrentUser(ctx, req.Principal)
	if ctx.Err() != nil {
		log.Info(LogMsgRequestCancelled)
		return Cancelled()
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.Error(LogMsgUserLookupFailed, "error", err)
		s.trackFailure(ctx, req.Principal.UserID, FailureReasonUnexpected)
		return errorRedirect(req.RedirectURI, req.State, ErrorServerError)
	}
	if user == nil {
		log.Error(LogMsgUserNotFound, "principal_user_id", req.Principal.UserID)
		s.trackFailure(ctx, req.Principal.UserID, FailureReasonUserNotFound)
		return errorRedirect(req.RedirectURI, req.State, ErrorServerError)
	}

	hadToken := user.IsLinkedToAlexa()
	token := s.tokens.Generate()
	user.AlexaToken = &token

	result := s.users.UpdateUser(ctx, user)
	if ctx.Err() != nil {
		log.Info(LogMsgRequestCancelled)
		return Cancelled()
	}
	if !result.Succeeded {
		log.Error(LogMsgUpdateFailed, "user_id", user.ID)
		for _, e := range result.Errors {
			log.Error(LogMsgUpdateError, "user_id", user.ID, "code", e.Code, "description", e.Description)
		}
		s.trackFailure(ctx, user.ID, FailureReasonUpdateFailed)
		return errorRedirect(req.RedirectURI, req.State, ErrorServerError)
	}

	if hadToken {
		log.Info(LogMsgTokenRegenerated, "user_id", user.ID)
		s.track(ctx, func() { s.telemetry.TrackLinkRegenerated(ctx, user.ID) })
	} else {
		log.Info(LogMsgTokenCreated, "user_id", user.ID)
		s.track(ctx, func() { s.telemetry.TrackLinkCreated(ctx, user.ID) })
	}

	return successRedirect(req.RedirectURI, req.State, token)
}

func (s *service) trackFailure(ctx context.Context, userID, reason string) {
	s.track(ctx, func() { s.telemetry.TrackLinkFailure(ctx, userID, reason) })
}

// track runs a telemetry call, discarding any panic it raises
func (s *service) track(ctx context.Context, fn func()) {
	if s.telemetry == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Warn(LogMsgTelemetryFailed, "panic", fmt.Sprint(r))
		}
	}()
	fn()
}
