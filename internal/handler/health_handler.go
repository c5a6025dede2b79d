package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"quiz-scribe/internal/dto"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
	statusDisabled = "disabled"
)

// Pinger is satisfied by domain.Cache and *sqlx.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler reports the state of optional dependencies.
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler takes named checks; a nil Pinger is reported as disabled.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health godoc
// @Summary Service health
// @Description Reports the status of the cache, database and media tools
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: statusOK, Dependencies: make(map[string]string, len(h.checks))}
	for name, check := range h.checks {
		if check == nil {
			resp.Dependencies[name] = statusDisabled
			continue
		}
		if err := check.Ping(ctx); err != nil {
			resp.Dependencies[name] = statusDown
			resp.Status = statusDegraded
			continue
		}
		resp.Dependencies[name] = statusOK
	}

	if resp.Status != statusOK {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
