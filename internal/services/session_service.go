package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krishna7838/AI-chatbot/internal/database"
	"github.com/krishna7838/AI-chatbot/internal/models"
)

// SessionService manages session lifecycle: creation, mode switching, listing
// and cascading deletion. Lookups are cached briefly since every chat request
// revalidates its session; writes invalidate the cached entry.
type SessionService struct {
	collection   *mongo.Collection
	documents    *DocumentService
	chatLog      *ChatLogService
	sessionCache *cache.Cache
}

// NewSessionService creates a new session service
func NewSessionService(mongodb *database.MongoDB, documents *DocumentService, chatLog *ChatLogService) *SessionService {
	return &SessionService{
		collection:   mongodb.Collection(database.CollectionSessions),
		documents:    documents,
		chatLog:      chatLog,
		sessionCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Create starts a new session with a fresh UUID. Unrecognized mode values
// default to Global.
func (s *SessionService) Create(ctx context.Context, description, mode string) (*models.Session, error) {
	if description == "" {
		description = "No description"
	}
	if !models.ValidMode(mode) {
		mode = string(models.ModeGlobal)
	}

	session := &models.Session{
		ID:          uuid.New().String(),
		Description: description,
		Mode:        mode,
		CreatedAt:   time.Now(),
	}

	if _, err := s.collection.InsertOne(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionCache.Set(session.ID, session, cache.DefaultExpiration)
	log.Printf("✅ [SESSIONS] Created session %s (mode: %s)", session.ID, models.Mode(mode).Label())

	return session, nil
}

// Get looks up a session by id, serving from cache when possible
func (s *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	if cached, found := s.sessionCache.Get(sessionID); found {
		return cached.(*models.Session), nil
	}

	var session models.Session
	err := s.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.sessionCache.Set(sessionID, &session, cache.DefaultExpiration)
	return &session, nil
}

// List returns summaries for all sessions
func (s *SessionService) List(ctx context.Context) ([]models.SessionSummary, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []models.SessionSummary{}
	for cursor.Next(ctx) {
		var session models.Session
		if err := cursor.Decode(&session); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		summaries = append(summaries, models.SessionSummary{
			SessionID:   session.ID,
			Description: session.Description,
			Mode:        models.NormalizeMode(session.Mode).Label(),
			CreatedAt:   session.CreatedAt.Format(models.TimestampFormat),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return summaries, nil
}

// SwitchMode updates a session's mode. The recorded history of earlier
// exchanges keeps the mode they were asked under.
func (s *SessionService) SwitchMode(ctx context.Context, sessionID, mode string) error {
	if !models.ValidMode(mode) {
		return ErrInvalidMode
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": sessionID},
		bson.M{"$set": bson.M{"mode": mode}},
	)
	if err != nil {
		return fmt.Errorf("failed to switch mode: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrSessionNotFound
	}

	s.sessionCache.Delete(sessionID)
	log.Printf("🔄 [SESSIONS] Session %s switched to %s mode", sessionID, models.Mode(mode).Label())

	return nil
}

// Delete removes a session and cascades to its documents, blobs and chat
// history. Deleting a session that does not exist still succeeds.
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	if err := s.chatLog.DeleteBySession(ctx, sessionID); err != nil {
		return err
	}
	if err := s.documents.DeleteBySession(ctx, sessionID); err != nil {
		return err
	}
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.sessionCache.Delete(sessionID)
	log.Printf("🗑️  [SESSIONS] Deleted session %s", sessionID)

	return nil
}
