package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

var errConnReset = errors.New("connection reset by peer")

func newMockedService(repo *MockRepository) Service {
	return NewService(repo, CacheConfig{Size: 10, TTL: time.Minute})
}

func TestGetCurrentUser_StorageErrorIsWrapped(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUserByID", mock.Anything, "u-1").Return(nil, errConnReset)

	_, err := newMockedService(repo).GetCurrentUser(context.Background(), domain.Principal{UserID: "u-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errConnReset)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
	assert.Contains(t, err.Error(), ErrMsgFailedToGetUser)
}

func TestFindByAlexaToken_HitsStorageOnce(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUserByAlexaToken", mock.Anything, "tok").
		Return(&domain.User{ID: "u-1", FavoriteLines: []string{"central"}}, nil).Once()
	svc := newMockedService(repo)

	for i := 0; i < 3; i++ {
		u, err := svc.FindByAlexaToken(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
	}

	repo.AssertNumberOfCalls(t, "GetUserByAlexaToken", 1)
}

func TestFindByAlexaToken_MissesAreNotCached(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUserByAlexaToken", mock.Anything, "gone").Return(nil, domain.ErrUserNotFound)
	svc := newMockedService(repo)

	for i := 0; i < 2; i++ {
		_, err := svc.FindByAlexaToken(context.Background(), "gone")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	}

	repo.AssertNumberOfCalls(t, "GetUserByAlexaToken", 2)
}

func TestUpdateUser_StorageFailureCode(t *testing.T) {
	repo := new(MockRepository)
	u := &domain.User{ID: "u-1"}
	repo.On("UpdateUser", mock.Anything, u).Return(errConnReset)

	result := newMockedService(repo).UpdateUser(context.Background(), u)

	require.False(t, result.Succeeded)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, domain.UpdateCodeStorageFailure, result.Errors[0].Code)
	assert.Equal(t, errConnReset.Error(), result.Errors[0].Description)
}

func TestSetFavoriteLines_UnknownLineSkipsStorage(t *testing.T) {
	repo := new(MockRepository)

	_, err := newMockedService(repo).SetFavoriteLines(context.Background(),
		domain.Principal{UserID: "u-1"}, "etag", []string{"central", "thameslink"})

	assert.ErrorIs(t, err, domain.ErrInvalidLine)
	repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestDeleteUser_StorageErrorIsWrapped(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteUser", mock.Anything, "u-1").Return(errConnReset)

	err := newMockedService(repo).DeleteUser(context.Background(), domain.Principal{UserID: "u-1"})

	assert.ErrorIs(t, err, errConnReset)
	assert.Contains(t, err.Error(), ErrMsgFailedToDeleteUser)
	repo.AssertExpectations(t)
}
