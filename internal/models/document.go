package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document holds the extracted text for one uploaded file. The raw bytes live
// in GridFS under GridFSID; this record carries everything prompt building needs.
type Document struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID  string             `bson:"sessionId" json:"session_id"`
	Filename   string             `bson:"filename" json:"filename"`
	Filetype   string             `bson:"filetype" json:"filetype"`
	Content    string             `bson:"content" json:"content"`
	UploadedAt time.Time          `bson:"uploadedAt" json:"uploaded_at"`
	GridFSID   primitive.ObjectID `bson:"gridfsId" json:"gridfs_id"`
}

// UploadFile is one file of an upload batch.
type UploadFile struct {
	Filename string
	Data     []byte
}

// UploadedFile identifies a stored file in the upload response.
type UploadedFile struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
}

// UploadResult reports the outcome of an upload batch. Duplicates are skipped,
// never overwritten; extraction failures still count as uploaded.
type UploadResult struct {
	Uploaded []UploadedFile
	Skipped  []string
}

// DocumentSummary is the listing shape for POST /documents.
type DocumentSummary struct {
	FileID     string `json:"file_id"`
	Filename   string `json:"filename"`
	Length     int64  `json:"length"`
	UploadDate string `json:"upload_date"`
}
