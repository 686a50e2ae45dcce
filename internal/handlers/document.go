package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/krishna7838/AI-chatbot/internal/models"
	"github.com/krishna7838/AI-chatbot/internal/services"
)

// DocumentHandler handles document upload and management HTTP requests
type DocumentHandler struct {
	documents *services.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Upload ingests a multipart batch of files for a session
// POST /upload
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	sessionID := c.FormValue("session_id")

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id and files are required",
		})
	}

	fileHeaders := form.File["files"]
	if sessionID == "" || len(fileHeaders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id and files are required",
		})
	}

	files := make([]models.UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			log.Printf("❌ [UPLOAD] Failed to open %s: %v", fh.Filename, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to process file",
			})
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			log.Printf("❌ [UPLOAD] Failed to read %s: %v", fh.Filename, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read file",
			})
		}
		files = append(files, models.UploadFile{Filename: fh.Filename, Data: data})
	}

	result, err := h.documents.Upload(c.Context(), sessionID, files)
	if err != nil {
		log.Printf("❌ [UPLOAD] Upload failed for session %s: %v", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store files",
		})
	}

	log.Printf("📄 [UPLOAD] Session %s: %d uploaded, %d skipped", sessionID, len(result.Uploaded), len(result.Skipped))

	return c.JSON(fiber.Map{
		"message":       fmt.Sprintf("%d files uploaded successfully", len(result.Uploaded)),
		"files":         result.Uploaded,
		"skipped_files": result.Skipped,
	})
}

// List returns document summaries for a session
// POST /documents
func (h *DocumentHandler) List(c *fiber.Ctx) error {
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

	summaries, err := h.documents.List(c.Context(), req.SessionID)
	if err != nil {
		log.Printf("❌ [DOCUMENTS] Failed to list documents for session %s: %v", req.SessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list documents",
		})
	}

	return c.JSON(summaries)
}

// Delete removes one document's blob and text record
// DELETE /delete_document/:file_id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	fileID := c.Params("file_id")

	filename, err := h.documents.Delete(c.Context(), fileID)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("❌ [DOCUMENTS] Failed to delete document %s: %v", fileID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to delete document",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Document '%s' deleted successfully", filename),
	})
}
