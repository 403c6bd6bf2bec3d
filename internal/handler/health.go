package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/LondonTravel_Go/internal/database"
	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// readinessTimeout bounds each dependency check made by /readyz
const readinessTimeout = 2 * time.Second

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ReadinessCheck is a dependency that must answer before traffic is accepted
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// DatabaseCheck pings the user store
func DatabaseCheck(pool database.Pool) ReadinessCheck {
	return ReadinessCheck{Name: "database", Check: pool.Ping}
}

// HandleHealthz reports that the process is serving
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz runs every check and reports 503 if any of them fails.
// Failure details are logged; the body only names the failing dependency.
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (database connected)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: StatusOK, Checks: make(map[string]string, len(checks))}
		status := http.StatusOK

		for _, c := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			err := c.Check(ctx)
			cancel()

			if err != nil {
				logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "check", c.Name, "error", err)
				resp.Checks[c.Name] = StatusUnavailable
				resp.Status = StatusUnavailable
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[c.Name] = StatusOK
		}

		respondJSON(w, status, resp)
	}
}
