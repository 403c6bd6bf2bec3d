package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/logger"
	"github.com/osse101/LondonTravel_Go/internal/repository"
)

type service struct {
	repo   repository.User
	tokens *tokenCache
}

// NewService creates a new user service
func NewService(repo repository.User, cacheConfig CacheConfig) Service {
	return &service{
		repo:   repo,
		tokens: newTokenCache(cacheConfig),
	}
}

// GetCurrentUser loads the user the principal refers to
func (s *service) GetCurrentUser(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	if !principal.IsAuthenticated() {
		return nil, domain.ErrUserNotFound
	}

	user, err := s.repo.GetUserByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

// UpdateUser persists user, reporting failures as UpdateResult errors
func (s *service) UpdateUser(ctx context.Context, user *domain.User) domain.UpdateResult {
	err := s.repo.UpdateUser(ctx, user)
	s.tokens.InvalidateUser(user.ID)
	if err == nil {
		return domain.UpdateSucceeded()
	}

	logger.FromContext(ctx).Warn(LogMsgUserUpdateFailed, "user_id", user.ID, "error", err)
	return domain.UpdateFailed(updateErrorFor(err))
}

func updateErrorFor(err error) domain.UpdateError {
	switch {
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return domain.UpdateError{Code: domain.UpdateCodeConcurrencyFailure, Description: domain.ErrMsgConcurrencyConflict}
	case errors.Is(err, domain.ErrUserNotFound):
		return domain.UpdateError{Code: domain.UpdateCodeUserNotFound, Description: domain.ErrMsgUserNotFound}
	case errors.Is(err, domain.ErrDuplicateAlexaToken):
		return domain.UpdateError{Code: domain.UpdateCodeDuplicateToken, Description: domain.ErrMsgDuplicateAlexaToken}
	default:
		return domain.UpdateError{Code: domain.UpdateCodeStorageFailure, Description: err.Error()}
	}
}

// resultError converts a failed UpdateResult back into a domain error
func resultError(result domain.UpdateResult) error {
	if result.Succeeded {
		return nil
	}
	for _, e := range result.Errors {
		switch e.Code {
		case domain.UpdateCodeConcurrencyFailure:
			return domain.ErrConcurrencyConflict
		case domain.UpdateCodeUserNotFound:
			return domain.ErrUserNotFound
		case domain.UpdateCodeDuplicateToken:
			return domain.ErrDuplicateAlexaToken
		}
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrDatabaseError, result.Errors[0].Description)
	}
	return domain.ErrDatabaseError
}

// FindByAlexaToken resolves the user an access token was issued to
func (s *service) FindByAlexaToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUserNotFound
	}

	if user, ok := s.tokens.Get(token); ok {
		return user, nil
	}

	epoch := s.tokens.Epoch()
	user, err := s.repo.GetUserByAlexaToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}

	s.tokens.SetIfUnchanged(token, user, epoch)
	return user, nil
}

// SetFavoriteLines replaces the user's favorite lines when etag is current
func (s *service) SetFavoriteLines(ctx context.Context, principal domain.Principal, etag string, lines []string) (*domain.User, error) {
	for _, id := range lines {
		if !domain.IsValidLine(id) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLine, id)
		}
	}

	user, err := s.GetCurrentUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	if user.ETag != etag {
		return nil, domain.ErrConcurrencyConflict
	}

	user.FavoriteLines = domain.NormalizeLines(lines)
	if err := resultError(s.UpdateUser(ctx, user)); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgFavoriteLinesSaved, "user_id", user.ID, "count", len(user.FavoriteLines))
	return user, nil
}

// RemoveAlexaLink revokes the user's Alexa access token
func (s *service) RemoveAlexaLink(ctx context.Context, principal domain.Principal, etag string) (*domain.User, error) {
	user, err := s.GetCurrentUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	if user.ETag != etag {
		return nil, domain.ErrConcurrencyConflict
	}
	if !user.IsLinkedToAlexa() {
		return user, nil
	}

	user.AlexaToken = nil
	if err := resultError(s.UpdateUser(ctx, user)); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgAlexaLinkRemoved, "user_id", user.ID)
	return user, nil
}

// DeleteUser removes the principal's account
func (s *service) DeleteUser(ctx context.Context, principal domain.Principal) error {
	if !principal.IsAuthenticated() {
		return domain.ErrUserNotFound
	}

	if err := s.repo.DeleteUser(ctx, principal.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteUser, err)
	}
	s.tokens.InvalidateUser(principal.UserID)

	logger.FromContext(ctx).Info(LogMsgUserDeleted, "user_id", principal.UserID)
	return nil
}
