package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/krishna7838/AI-chatbot/internal/models"
	"github.com/krishna7838/AI-chatbot/internal/prompt"
)

// SessionLookup resolves a session id to its record.
type SessionLookup interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
}

// DocumentTexts provides a session's accumulated document text.
type DocumentTexts interface {
	AccumulatedText(ctx context.Context, sessionID string) (string, error)
}

// ChatAppender persists one completed exchange.
type ChatAppender interface {
	Append(ctx context.Context, entry *models.ChatEntry) error
}

// Completer produces an answer for a system instruction and user message.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// ChatService orchestrates one question/answer round trip: session validation,
// mode resolution, prompt construction, the completion call, and persistence.
type ChatService struct {
	sessions  SessionLookup
	documents DocumentTexts
	chatLog   ChatAppender
	completer Completer
}

// NewChatService creates a new chat service
func NewChatService(sessions SessionLookup, documents DocumentTexts, chatLog ChatAppender, completer Completer) *ChatService {
	return &ChatService{
		sessions:  sessions,
		documents: documents,
		chatLog:   chatLog,
		completer: completer,
	}
}

// Ask answers one question for a session. Local sessions without document text
// short-circuit to the fixed empty-document answer without calling the
// completion service and without persisting anything. Completion failures are
// surfaced and nothing is persisted for them either.
func (s *ChatService) Ask(ctx context.Context, sessionID, question string) (*models.ChatResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	mode := models.NormalizeMode(session.Mode)

	var accumulated string
	if mode == models.ModeLocal {
		accumulated, err = s.documents.AccumulatedText(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(accumulated) == "" {
			return &models.ChatResult{
				SessionID: sessionID,
				User:      question,
				Bot:       prompt.EmptyDocumentAnswer,
			}, nil
		}
	}

	systemPrompt := prompt.Build(mode, accumulated)

	answer, err := s.completer.Complete(ctx, systemPrompt, question)
	if err != nil {
		return nil, fmt.Errorf("completion service: %w", err)
	}
	if strings.TrimSpace(answer) == "" {
		answer = prompt.NoResponseAnswer
	}

	entry := &models.ChatEntry{
		SessionID: sessionID,
		Mode:      strings.ToLower(mode.Label()),
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now(),
	}
	if err := s.chatLog.Append(ctx, entry); err != nil {
		return nil, err
	}

	log.Printf("💬 [CHAT] Session %s answered in %s mode (answer_len=%d)", sessionID, entry.Mode, len(answer))

	return &models.ChatResult{
		SessionID: sessionID,
		User:      question,
		Bot:       answer,
	}, nil
}
