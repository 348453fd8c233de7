package api

import (
	"time"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/config"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"

	"github.com/gofiber/fiber/v2"
)

// StatusHandler serves the service discovery and health endpoints.
type StatusHandler struct {
	cfg *config.Config
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(cfg *config.Config) *StatusHandler {
	return &StatusHandler{cfg: cfg}
}

// Root lists the available endpoints.
func (h *StatusHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "RealTutor AI Backend is running",
		"endpoints": fiber.Map{
			"status":    "GET /status",
			"generate":  "POST /generate",
			"analyze":   "POST /analyze",
			"websocket": "ws://localhost:" + h.cfg.Server.WebSocketPort,
		},
	})
}

// Status reports the running state and the WebSocket port.
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "running",
		"websocket_port": h.cfg.Server.WebSocketPort,
		"model":          models.ModelName,
	})
}

// Health is the liveness probe.
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
