package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// MockPreferencesService mocks user.PreferencesService
type MockPreferencesService struct {
	mock.Mock
}

func (m *MockPreferencesService) FindByAlexaToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockPreferencesService) SetFavoriteLines(ctx context.Context, principal domain.Principal, etag string, lines []string) (*domain.User, error) {
	args := m.Called(ctx, principal, etag, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockPreferencesService) RemoveAlexaLink(ctx context.Context, principal domain.Principal, etag string) (*domain.User, error) {
	args := m.Called(ctx, principal, etag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func preferencesRequest(authorization string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
	if authorization != "" {
		req.Header.Set(HeaderAuthorization, authorization)
	}
	return req
}

func TestHandleGetPreferences_Unauthorized(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantDetail    string
	}{
		{"no header", "", ErrMsgNoAccessToken},
		{"blank header", "   ", ErrMsgNoAccessToken},
		{"scheme only", "Bearer", ErrMsgNoAccessToken},
		{"basic scheme", "Basic dXNlcjpwYXNz", ErrMsgBearerSchemeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPreferencesService)

			w := httptest.NewRecorder()
			HandleGetPreferences(svc).ServeHTTP(w, preferencesRequest(tt.authorization))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, BearerScheme, w.Header().Get(HeaderWWWAuthenticate))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, ErrMsgUnauthorized, resp.Message)
			assert.Equal(t, []string{tt.wantDetail}, resp.Details)
			svc.AssertNotCalled(t, "FindByAlexaToken", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleGetPreferences_UnknownToken(t *testing.T) {
	svc := new(MockPreferencesService)
	svc.On("FindByAlexaToken", mock.Anything, "not-issued").Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	HandleGetPreferences(svc).ServeHTTP(w, preferencesRequest("Bearer not-issued"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, BearerScheme, w.Header().Get(HeaderWWWAuthenticate))
	assert.NotContains(t, w.Body.String(), "details")
	svc.AssertExpectations(t)
}

func TestHandleGetPreferences_LookupFailure(t *testing.T) {
	svc := new(MockPreferencesService)
	svc.On("FindByAlexaToken", mock.Anything, "token").Return(nil, domain.ErrDatabaseError)

	w := httptest.NewRecorder()
	HandleGetPreferences(svc).ServeHTTP(w, preferencesRequest("Bearer token"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGetPreferencesFailed)
}

func TestHandleGetPreferences_Success(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		lines         []string
		want          string
	}{
		{"favorites", "Bearer token", []string{"central", "victoria"}, `{"userId":"user-1","favoriteLines":["central","victoria"]}`},
		{"scheme is case insensitive", "bearer token", []string{"dlr"}, `{"userId":"user-1","favoriteLines":["dlr"]}`},
		{"no favorites", "Bearer   token", nil, `{"userId":"user-1","favoriteLines":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPreferencesService)
			svc.On("FindByAlexaToken", mock.Anything, "token").
				Return(&domain.User{ID: "user-1", FavoriteLines: tt.lines}, nil)

			w := httptest.NewRecorder()
			HandleGetPreferences(svc).ServeHTTP(w, preferencesRequest(tt.authorization))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			assert.NotContains(t, w.Body.String(), "token")
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header     string
		wantToken  string
		wantDetail string
	}{
		{"Bearer abc", "abc", ""},
		{"BEARER abc", "abc", ""},
		{" Bearer  abc ", "abc", ""},
		{"", "", ErrMsgNoAccessToken},
		{"Bearer ", "", ErrMsgNoAccessToken},
		{"Token abc", "", ErrMsgBearerSchemeRequired},
		{"abc", "", ErrMsgBearerSchemeRequired},
	}

	for _, tt := range tests {
		token, detail := bearerToken(tt.header)
		assert.Equal(t, tt.wantToken, token, tt.header)
		assert.Equal(t, tt.wantDetail, detail, tt.header)
	}
}

func TestHandleGetLines(t *testing.T) {
	w := httptest.NewRecorder()
	HandleGetLines().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/lines", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var lines []LineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Len(t, lines, len(domain.Lines()))
	assert.Contains(t, lines, LineResponse{ID: "northern", Name: "Northern", Mode: domain.ModeTube})
}
