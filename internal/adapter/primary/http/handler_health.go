package http

import (
	"net/http"
	"time"

	"github.com/qudous44/tiktok-server/internal/config"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

// HealthHandler handles GET /health.
type HealthHandler struct {
	cfg    *config.Config
	checks []secondary.HealthChecker
}

// NewHealthHandler creates a health handler reporting configuration presence
// and dependency checks.
func NewHealthHandler(cfg *config.Config, checks []secondary.HealthChecker) *HealthHandler {
	return &HealthHandler{cfg: cfg, checks: checks}
}

// ServeHTTP reports process status, which required configuration values are
// present (never their contents), and the state of each dependency check.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	checks := make(map[string]string)

	for _, check := range h.checks {
		if err := check.Check(r.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks[check.Name()] = err.Error()
		} else {
			checks[check.Name()] = "ok"
		}
	}

	statusText := "healthy"
	if status != http.StatusOK {
		statusText = "unhealthy"
	}

	respondJSON(w, status, HealthResponse{
		Status:    statusText,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Config:    h.cfg.Presence(),
		Checks:    checks,
	})
}
