package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"estatehub/internal/config"
)

// HealthHandler answers liveness and readiness requests
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "estatehub-api",
		"mode":    config.AppConfig.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check. Answers 503 when the database is
// unreachable so load balancers can pull the instance.
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status := fiber.StatusOK
	overall := "ok"
	database := "up"
	if err := config.HealthCheck(); err != nil {
		status = fiber.StatusServiceUnavailable
		overall = "degraded"
		database = "down"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"database": database,
		"uptime":   time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// APIInfo handles API v1 info
// @Summary API v1 info
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "estatehub-api",
		"version": "1.0.0",
	})
}
