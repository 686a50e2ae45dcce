package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krishna7838/AI-chatbot/internal/database"
	"github.com/krishna7838/AI-chatbot/internal/models"
)

// ChatLogService handles MongoDB CRUD for the append-only chat transcript
type ChatLogService struct {
	collection *mongo.Collection
}

// NewChatLogService creates a new chat log service
func NewChatLogService(mongodb *database.MongoDB) *ChatLogService {
	return &ChatLogService{
		collection: mongodb.Collection(database.CollectionChatHistory),
	}
}

// Append persists one question/answer exchange
func (s *ChatLogService) Append(ctx context.Context, entry *models.ChatEntry) error {
	_, err := s.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to append chat entry: %w", err)
	}
	return nil
}

// History returns a session's exchanges in question-arrival order
func (s *ChatLogService) History(ctx context.Context, sessionID string) ([]models.HistoryEntry, error) {
	cursor, err := s.collection.Find(ctx,
		bson.M{"sessionId": sessionID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer cursor.Close(ctx)

	history := []models.HistoryEntry{}
	for cursor.Next(ctx) {
		var entry models.ChatEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode chat entry: %w", err)
		}
		history = append(history, models.HistoryEntry{
			Question:  entry.Question,
			Answer:    entry.Answer,
			Timestamp: entry.Timestamp.Format(models.TimestampFormat),
			Mode:      entry.Mode,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat history: %w", err)
	}

	return history, nil
}

// DeleteBySession removes all exchanges owned by a session
func (s *ChatLogService) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return fmt.Errorf("failed to delete chat history: %w", err)
	}
	return nil
}
