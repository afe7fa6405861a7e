package handler

import (
	"context"
	"time"

	"trivia/internal/domain"
	"trivia/internal/dto"
	"trivia/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports dependency health
type HealthHandler struct {
	db    domain.Pinger
	cache domain.Pinger
}

// NewHealthHandler creates a HealthHandler; cache may be nil when Redis is disabled.
func NewHealthHandler(db domain.Pinger, cache domain.Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}
	status := fiber.StatusOK

	check := func(name string, p domain.Pinger) {
		if p == nil {
			resp.Checks[name] = "disabled"
			return
		}
		if err := p.Ping(ctx); err != nil {
			logger.Get().Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			status = fiber.StatusServiceUnavailable
			return
		}
		resp.Checks[name] = "up"
	}
	check("database", h.db)
	check("redis", h.cache)

	return c.Status(status).JSON(resp)
}
