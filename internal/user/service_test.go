package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

func newTestService(repo *FakeRepository) *service {
	return NewService(repo, CacheConfig{Size: 10, TTL: time.Minute}).(*service)
}

func googleProfile(id string) domain.ExternalProfile {
	return domain.ExternalProfile{
		Provider:       domain.ProviderGoogle,
		ProviderUserID: id,
		DisplayName:    "Google",
		Email:          id + "@example.com",
		GivenName:      "Ada",
		Surname:        "Lovelace",
	}
}

func seedUser(t *testing.T, svc *service, id string) (*domain.User, domain.Principal) {
	t.Helper()
	u, err := svc.SignIn(context.Background(), domain.Principal{}, googleProfile(id))
	require.NoError(t, err)
	return u, domain.Principal{UserID: u.ID, Provider: domain.ProviderGoogle}
}

// =============================================================================
// SignIn
// =============================================================================

func TestSignIn_CreatesThenFindsUser(t *testing.T) {
	svc := newTestService(NewFakeRepository())
	ctx := context.Background()

	created, err := svc.SignIn(ctx, domain.Principal{}, googleProfile("g-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "g-1@example.com", created.Email)
	assert.Equal(t, []string{}, created.FavoriteLines)

	again, err := svc.SignIn(ctx, domain.Principal{}, googleProfile("g-1"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestSignIn_AddsLoginToSignedInUser(t *testing.T) {
	svc := newTestService(NewFakeRepository())
	ctx := context.Background()
	u, principal := seedUser(t, svc, "g-2")

	linked, err := svc.SignIn(ctx, principal, domain.ExternalProfile{
		Provider: domain.ProviderGitHub, ProviderUserID: "gh-2", DisplayName: "GitHub",
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, linked.ID)
	assert.True(t, linked.HasLogin(domain.ProviderGitHub))
}

func TestSignIn_LoginOwnedByAnotherUser(t *testing.T) {
	svc := newTestService(NewFakeRepository())
	ctx := context.Background()
	_, _ = seedUser(t, svc, "g-3")
	_, other := seedUser(t, svc, "g-4")

	_, err := svc.SignIn(ctx, other, googleProfile("g-3"))
	assert.ErrorIs(t, err, domain.ErrLoginInUse)
}

func TestSignIn_SecondLoginForSameProvider(t *testing.T) {
	svc := newTestService(NewFakeRepository())
	_, principal := seedUser(t, svc, "g-5")

	_, err := svc.SignIn(context.Background(), principal, googleProfile("g-6"))
	assert.ErrorIs(t, err, domain.ErrLoginInUse)
}

// =============================================================================
// UpdateUser
// =============================================================================

func TestUpdateUser_ResultCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"concurrency", domain.ErrConcurrencyConflict, domain.UpdateCodeConcurrencyFailure},
		{"missing", domain.ErrUserNotFound, domain.UpdateCodeUserNotFound},
		{"duplicate token", domain.ErrDuplicateAlexaToken, domain.UpdateCodeDuplicateToken},
		{"storage", errors.New("disk full"), domain.UpdateCodeStorageFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeRepository()
			svc := newTestService(repo)
			u, _ := seedUser(t, svc, "update-"+tt.name)

			repo.FailUpdates = tt.err
			result := svc.UpdateUser(context.Background(), u)

			assert.False(t, result.Succeeded)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.code, result.Errors[0].Code)
		})
	}
}

func TestUpdateUser_StaleETag(t *testing.T) {
	svc := newTestService(NewFakeRepository())
	ctx := context.Background()
	u, principal := seedUser(t, svc, "stale")

	first, err := svc.GetCurrentUser(ctx, principal)
	require.NoError(t, err)

	require.True(t, svc.UpdateUser(ctx, u).Succeeded)

	result := svc.UpdateUser(ctx, first)
	assert.False(t, result.Succeeded)
	assert.Equal(t, domain.UpdateCodeConcurrencyFailure, result.Errors[0].Code)
}

// =============================================================================
// Preferences
// =============================================================================

func TestSetFavoriteLines(t *testing.T) {
	svc := newTestService(NewFakeRepository())
	ctx := context.Background()
	u, principal := seedUser(t, svc, "lines")

	updated, err := svc.SetFavoriteLines(ctx, principal, u.ETag, []string{"victoria", "district", "victoria"})
	require.NoError(t, err)
	assert.Equal(t, []string{"district", "victoria"}, updated.FavoriteLines)
	assert.NotEqual(t, u.ETag, updated.ETag)

	_, err = svc.SetFavoriteLines(ctx, principal, u.ETag, []string{"central"})
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)

	_, err = svc.SetFavoriteLines(ctx, principal, updated.ETag, []string{"not-a-line"})
	assert.ErrorIs(t, err, domain.ErrInvalidLine)
}

func TestFindByAlexaToken_CachesAndInvalidates(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()
	u, principal := seedUser(t, svc, "token")

	token := "issued-token"
	u.AlexaToken = &token
	require.True(t, svc.UpdateUser(ctx, u).Succeeded)

	found, err := svc.FindByAlexaToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, 1, svc.tokens.Len())

	_, err = svc.RemoveAlexaLink(ctx, principal, u.ETag)
	require.NoError(t, err)
	assert.Equal(t, 0, svc.tokens.Len())

	_, err = svc.FindByAlexaToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.FindByAlexaToken(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// pausingTokenRepo holds GetUserByAlexaToken after the row has been read
type pausingTokenRepo struct {
	*FakeRepository
	read    chan struct{}
	release chan struct{}
}

func (r *pausingTokenRepo) GetUserByAlexaToken(ctx context.Context, token string) (*domain.User, error) {
	user, err := r.FakeRepository.GetUserByAlexaToken(ctx, token)
	close(r.read)
	<-r.release
	return user, err
}

func TestFindByAlexaToken_UnlinkDuringLookupIsNotCached(t *testing.T) {
	fake := NewFakeRepository()
	seeder := newTestService(fake)
	ctx := context.Background()
	u, principal := seedUser(t, seeder, "racing")

	token := "old-token"
	u.AlexaToken = &token
	require.True(t, seeder.UpdateUser(ctx, u).Succeeded)

	repo := &pausingTokenRepo{FakeRepository: fake, read: make(chan struct{}), release: make(chan struct{})}
	svc := NewService(repo, CacheConfig{Size: 10, TTL: time.Minute}).(*service)

	done := make(chan error, 1)
	go func() {
		_, err := svc.FindByAlexaToken(ctx, token)
		done <- err
	}()

	<-repo.read
	current, err := fake.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	_, err = svc.RemoveAlexaLink(ctx, principal, current.ETag)
	require.NoError(t, err)
	close(repo.release)
	require.NoError(t, <-done)

	assert.Equal(t, 0, svc.tokens.Len())
	_, err = svc.FindByAlexaToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRemoveAlexaLink_NotLinkedIsNoop(t *testing.T) {
	svc := newTestService(NewFakeRepository())
	u, principal := seedUser(t, svc, "unlinked")

	got, err := svc.RemoveAlexaLink(context.Background(), principal, u.ETag)
	require.NoError(t, err)
	assert.Equal(t, u.ETag, got.ETag)
	assert.False(t, got.IsLinkedToAlexa())
}

// =============================================================================
// Account
// =============================================================================

func TestGetCurrentUser_Anonymous(t *testing.T) {
	svc := newTestService(NewFakeRepository())

	_, err := svc.GetCurrentUser(context.Background(), domain.Principal{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc := newTestService(NewFakeRepository())
	ctx := context.Background()
	_, principal := seedUser(t, svc, "delete")

	require.NoError(t, svc.DeleteUser(ctx, principal))

	_, err := svc.GetCurrentUser(ctx, principal)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, principal), domain.ErrUserNotFound)
}
