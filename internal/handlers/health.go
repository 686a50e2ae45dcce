package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/krishna7838/AI-chatbot/internal/database"
)

// HealthHandler reports process liveness and store connectivity
type HealthHandler struct {
	db *database.MongoDB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.MongoDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Handle responds to health check requests
// GET /health
func (h *HealthHandler) Handle(c *fiber.Ctx) error {
	status := "healthy"
	dbStatus := "connected"
	if err := h.db.Ping(c.Context()); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
