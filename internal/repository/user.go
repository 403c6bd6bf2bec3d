package repository

import (
	"context"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByLogin(ctx context.Context, provider, providerUserID string) (*domain.User, error)
	GetUserByAlexaToken(ctx context.Context, token string) (*domain.User, error)

	// CreateUser inserts the user and its logins, filling in ID and ETag.
	CreateUser(ctx context.Context, user *domain.User) error

	// UpdateUser persists mutable fields when user.ETag matches the stored value.
	// On success user.ETag is replaced with the new value. A stale ETag yields
	// domain.ErrConcurrencyConflict.
	UpdateUser(ctx context.Context, user *domain.User) error

	AddLogin(ctx context.Context, userID string, login domain.ExternalLogin) error
	DeleteUser(ctx context.Context, userID string) error
}
