package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"weddinginvitation/internal/delivery/http/helpers"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}

type HealthController struct {
	Logger *slog.Logger
	Store  Pinger
}

func NewHealthController(logger *slog.Logger, store Pinger) *HealthController {
	return &HealthController{Logger: logger, Store: store}
}

// Health godoc
// @Summary Health check
// @Description Pings the store. 503 when it is unreachable.
// @Tags ops
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 503 {object} controllers.HealthResponse
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := c.Store.PingContext(ctx); err != nil {
		c.Logger.WarnContext(ctx, "health check failed", "err", err)
		helpers.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
