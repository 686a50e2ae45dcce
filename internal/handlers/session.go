package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/krishna7838/AI-chatbot/internal/models"
	"github.com/krishna7838/AI-chatbot/internal/services"
)

// SessionHandler handles session lifecycle HTTP requests
type SessionHandler struct {
	sessions *services.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// List returns all sessions
// GET /sessions
func (h *SessionHandler) List(c *fiber.Ctx) error {
	summaries, err := h.sessions.List(c.Context())
	if err != nil {
		log.Printf("❌ [SESSIONS] Failed to list sessions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list sessions",
		})
	}
	return c.JSON(summaries)
}

// Create starts a new session
// POST /start_session
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Description string `json:"description"`
		Mode        string `json:"mode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.sessions.Create(c.Context(), req.Description, req.Mode)
	if err != nil {
		log.Printf("❌ [SESSIONS] Failed to create session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	return c.JSON(fiber.Map{
		"session_id": session.ID,
		"mode":       models.NormalizeMode(session.Mode).Label(),
	})
}

// SwitchMode changes a session's answer mode
// POST /switch_mode
func (h *SessionHandler) SwitchMode(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
		Mode      string `json:"mode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if !models.ValidMode(req.Mode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid mode. Use 1 (Local) or 2 (Global).",
		})
	}

	if err := h.sessions.SwitchMode(c.Context(), req.SessionID, req.Mode); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		log.Printf("❌ [SESSIONS] Failed to switch mode for %s: %v", req.SessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to switch mode",
		})
	}

	return c.JSON(fiber.Map{
		"session_id": req.SessionID,
		"new_mode":   models.Mode(req.Mode).Label(),
	})
}

// Delete removes a session with all its documents and chat history
// DELETE /delete_session/:session_id
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")

	if err := h.sessions.Delete(c.Context(), sessionID); err != nil {
		log.Printf("❌ [SESSIONS] Failed to delete session %s: %v", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete session",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Session deleted successfully",
	})
}
