package models

import (
	"strings"
	"time"
)

// Mode selects the knowledge source for a session's answers.
type Mode string

const (
	ModeLocal  Mode = "1" // answers restricted to uploaded document text
	ModeGlobal Mode = "2" // answers drawn from general knowledge
)

// NormalizeMode maps a stored mode value to Local or Global. Stored values may
// be legacy ("local"/"global") or inconsistent casing; anything that is not
// recognizably Local resolves to Global.
func NormalizeMode(raw string) Mode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "local":
		return ModeLocal
	default:
		return ModeGlobal
	}
}

// ValidMode reports whether raw is an accepted mode selector ("1" or "2").
func ValidMode(raw string) bool {
	return raw == string(ModeLocal) || raw == string(ModeGlobal)
}

// Label returns the human-readable mode name.
func (m Mode) Label() string {
	if m == ModeLocal {
		return "Local"
	}
	return "Global"
}

// Session groups documents and chat history under a single mode-tagged context.
// The id is a caller-visible UUID string, stored as the Mongo _id.
type Session struct {
	ID          string    `bson:"_id" json:"session_id"`
	Description string    `bson:"description" json:"description"`
	Mode        string    `bson:"mode" json:"mode"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// SessionSummary is the listing shape for GET /sessions.
type SessionSummary struct {
	SessionID   string `json:"session_id"`
	Description string `json:"description"`
	Mode        string `json:"mode"`
	CreatedAt   string `json:"created_at"`
}

// TimestampFormat matches the original API's rendered timestamps.
const TimestampFormat = "2006-01-02 15:04:05"
