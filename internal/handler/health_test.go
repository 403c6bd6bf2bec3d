package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func serveReadyz(t *testing.T, checks ...ReadinessCheck) (int, HealthResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	HandleReadyz(checks...).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz_Database(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantCheck  string
	}{
		{"connected", nil, http.StatusOK, StatusOK},
		{"ping failed", assert.AnError, http.StatusServiceUnavailable, StatusUnavailable},
		{"timeout", context.DeadlineExceeded, http.StatusServiceUnavailable, StatusUnavailable},
		{"connection refused", errors.New("connection refused"), http.StatusServiceUnavailable, StatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDBPool{}
			mockDB.On("Ping", mock.Anything).Return(tt.pingErr)

			code, resp := serveReadyz(t, DatabaseCheck(mockDB))

			assert.Equal(t, tt.wantStatus, code)
			assert.Equal(t, tt.wantCheck, resp.Status)
			assert.Equal(t, tt.wantCheck, resp.Checks["database"])
			mockDB.AssertExpectations(t)
		})
	}
}

func TestHandleReadyz_ErrorDetailNotExposed(t *testing.T) {
	w := httptest.NewRecorder()
	HandleReadyz(ReadinessCheck{Name: "database", Check: func(context.Context) error {
		return errors.New("password authentication failed for user postgres")
	}}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandleReadyz_ChecksRunIndependently(t *testing.T) {
	var cacheRan bool
	code, resp := serveReadyz(t,
		ReadinessCheck{Name: "database", Check: func(context.Context) error { return assert.AnError }},
		ReadinessCheck{Name: "cache", Check: func(context.Context) error { cacheRan = true; return nil }},
	)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.True(t, cacheRan)
	assert.Equal(t, map[string]string{"database": StatusUnavailable, "cache": StatusOK}, resp.Checks)
}

func TestHandleReadyz_CheckIsBounded(t *testing.T) {
	var deadline time.Time
	serveReadyz(t, ReadinessCheck{Name: "database", Check: func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	}})

	assert.WithinDuration(t, time.Now().Add(readinessTimeout), deadline, time.Second)
}
