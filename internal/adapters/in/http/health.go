package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready. It answers 503 until postgres
// responds to a ping.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	resp := readinessResponse{Status: "ok", Dependencies: map[string]dependencyStatus{}}
	code := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		resp.Status = "unavailable"
		resp.Dependencies["postgres"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		code = http.StatusServiceUnavailable
	} else {
		resp.Dependencies["postgres"] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(code, resp)
}
