package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/logger"
	"github.com/osse101/LondonTravel_Go/internal/metrics"
)

// SignIn finds the user owning the external login, attaches the login to the
// signed-in user, or registers a new user.
func (s *service) SignIn(ctx context.Context, current domain.Principal, profile domain.ExternalProfile) (*domain.User, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetUserByLogin(ctx, profile.Provider, profile.ProviderUserID)
	switch {
	case err == nil:
		if current.IsAuthenticated() && current.UserID != existing.ID {
			return nil, domain.ErrLoginInUse
		}
		metrics.SignInsTotal.WithLabelValues(profile.Provider).Inc()
		log.Info(LogMsgUserSignedIn, "user_id", existing.ID, "provider", profile.Provider)
		return existing, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}

	if current.IsAuthenticated() {
		return s.addLogin(ctx, current, profile)
	}

	user := &domain.User{
		Email:         profile.Email,
		GivenName:     profile.GivenName,
		Surname:       profile.Surname,
		FavoriteLines: []string{},
		Logins:        []domain.ExternalLogin{profile.Login()},
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrLoginInUse) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateUser, err)
	}

	metrics.SignInsTotal.WithLabelValues(profile.Provider).Inc()
	log.Info(LogMsgUserCreated, "user_id", user.ID, "provider", profile.Provider)
	return user, nil
}

func (s *service) addLogin(ctx context.Context, current domain.Principal, profile domain.ExternalProfile) (*domain.User, error) {
	user, err := s.GetCurrentUser(ctx, current)
	if err != nil {
		return nil, err
	}
	if user.HasLogin(profile.Provider) {
		return nil, fmt.Errorf("%w: %s", domain.ErrLoginInUse, profile.Provider)
	}

	if err := s.repo.AddLogin(ctx, user.ID, profile.Login()); err != nil {
		if errors.Is(err, domain.ErrLoginInUse) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAddLogin, err)
	}

	metrics.SignInsTotal.WithLabelValues(profile.Provider).Inc()
	logger.FromContext(ctx).Info(LogMsgLoginAdded, "user_id", user.ID, "provider", profile.Provider)
	return s.GetCurrentUser(ctx, current)
}
