package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricValue(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if out.Counter != nil {
		return out.GetCounter().GetValue()
	}
	return out.GetGauge().GetValue()
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/account/callback/{provider}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := metricValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/account/callback/{provider}", "418"))

	for _, p := range []string{"google", "github"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/account/callback/"+p, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	after := metricValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/account/callback/{provider}", "418"))
	assert.Equal(t, before+2, after)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	before := metricValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "200"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whatever", nil))

	after := metricValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "200"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, float64(0), metricValue(t, HTTPRequestsInFlight))
}

func TestMiddleware_SkipsScrapes(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	before := metricValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "200"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, ScrapePath, nil))

	after := metricValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "200"))
	assert.Equal(t, before, after)
}

func TestStatusRecorder_CountsBytes(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	_, err := rec.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = rec.Write([]byte(" world"))
	require.NoError(t, err)
	rec.WriteHeader(http.StatusAccepted)

	assert.Equal(t, 11, rec.bytes)
	assert.Equal(t, http.StatusAccepted, rec.status)
}
