package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/krishna7838/AI-chatbot/internal/services"
)

// ChatHandler handles question answering and history HTTP requests
type ChatHandler struct {
	chat    *services.ChatService
	chatLog *services.ChatLogService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *services.ChatService, chatLog *services.ChatLogService) *ChatHandler {
	return &ChatHandler{
		chat:    chat,
		chatLog: chatLog,
	}
}

// Ask answers one question for a session
// POST /chat
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.chat.Ask(c.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid session_id",
			})
		}
		log.Printf("❌ [CHAT] Failed to answer for session %s: %v", req.SessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// History returns a session's transcript in question-arrival order
// POST /history
func (h *ChatHandler) History(c *fiber.Ctx) error {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	history, err := h.chatLog.History(c.Context(), req.SessionID)
	if err != nil {
		log.Printf("❌ [CHAT] Failed to load history for session %s: %v", req.SessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	return c.JSON(history)
}
