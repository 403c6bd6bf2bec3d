package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.User for testing.
// It enforces the same ETag and uniqueness rules as the PostgreSQL repository.
type FakeRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by user ID

	// FailUpdates makes UpdateUser return this error when set
	FailUpdates error
}

// NewFakeRepository creates an empty fake repository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{users: make(map[string]*domain.User)}
}

func (f *FakeRepository) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := cloneUser(*u)
	return &c, nil
}

func (f *FakeRepository) GetUserByLogin(_ context.Context, provider, providerUserID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		for _, l := range u.Logins {
			if l.Provider == provider && l.ProviderUserID == providerUserID {
				c := cloneUser(*u)
				return &c, nil
			}
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) GetUserByAlexaToken(_ context.Context, token string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.AlexaToken != nil && *u.AlexaToken == token {
			c := cloneUser(*u)
			return &c, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) CreateUser(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, l := range user.Logins {
		if f.loginOwnerLocked(l.Provider, l.ProviderUserID) != "" {
			return domain.ErrLoginInUse
		}
	}

	user.ID = uuid.NewString()
	user.ETag = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	c := cloneUser(*user)
	f.users[user.ID] = &c
	return nil
}

func (f *FakeRepository) UpdateUser(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailUpdates != nil {
		return f.FailUpdates
	}

	stored, ok := f.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if stored.ETag != user.ETag {
		return domain.ErrConcurrencyConflict
	}
	if user.AlexaToken != nil {
		for id, other := range f.users {
			if id != user.ID && other.AlexaToken != nil && *other.AlexaToken == *user.AlexaToken {
				return domain.ErrDuplicateAlexaToken
			}
		}
	}

	user.ETag = uuid.NewString()
	user.UpdatedAt = time.Now()
	c := cloneUser(*user)
	c.Logins = stored.Logins
	f.users[user.ID] = &c
	return nil
}

func (f *FakeRepository) AddLogin(_ context.Context, userID string, login domain.ExternalLogin) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if f.loginOwnerLocked(login.Provider, login.ProviderUserID) != "" || stored.HasLogin(login.Provider) {
		return domain.ErrLoginInUse
	}
	stored.Logins = append(stored.Logins, login)
	stored.ETag = uuid.NewString()
	return nil
}

func (f *FakeRepository) DeleteUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *FakeRepository) loginOwnerLocked(provider, providerUserID string) string {
	for id, u := range f.users {
		for _, l := range u.Logins {
			if l.Provider == provider && l.ProviderUserID == providerUserID {
				return id
			}
		}
	}
	return ""
}
