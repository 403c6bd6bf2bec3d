package user

import (
	"context"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// AccountService resolves and persists the signed-in user
type AccountService interface {
	GetCurrentUser(ctx context.Context, principal domain.Principal) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) domain.UpdateResult
	DeleteUser(ctx context.Context, principal domain.Principal) error
}

// PreferencesService manages favorite lines and API access
type PreferencesService interface {
	FindByAlexaToken(ctx context.Context, token string) (*domain.User, error)
	SetFavoriteLines(ctx context.Context, principal domain.Principal, etag string, lines []string) (*domain.User, error)
	RemoveAlexaLink(ctx context.Context, principal domain.Principal, etag string) (*domain.User, error)
}

// SignInService maps external identities onto users
type SignInService interface {
	SignIn(ctx context.Context, current domain.Principal, profile domain.ExternalProfile) (*domain.User, error)
}

// Service is the full interface that composes all sub-interfaces.
// New code should depend on the smallest interface that meets its needs.
type Service interface {
	AccountService
	PreferencesService
	SignInService
}
