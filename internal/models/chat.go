package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatEntry is one question/answer exchange. Mode records the knowledge source
// active when the exchange happened ("local" or "global") and is never updated
// retroactively when the session's mode changes.
type ChatEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID string             `bson:"sessionId" json:"-"`
	Mode      string             `bson:"mode" json:"mode"`
	Question  string             `bson:"question" json:"question"`
	Answer    string             `bson:"answer" json:"answer"`
	Timestamp time.Time          `bson:"timestamp" json:"-"`
}

// HistoryEntry is the rendered shape for POST /history.
type HistoryEntry struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
	Mode      string `json:"mode"`
}

// ChatResult is returned by the conversation orchestrator for one question.
type ChatResult struct {
	SessionID string `json:"session_id"`
	User      string `json:"user"`
	Bot       string `json:"bot"`
}
