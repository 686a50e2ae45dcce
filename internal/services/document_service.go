package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krishna7838/AI-chatbot/internal/database"
	"github.com/krishna7838/AI-chatbot/internal/extract"
	"github.com/krishna7838/AI-chatbot/internal/models"
)

// DocumentService ingests uploaded files: raw bytes go to GridFS, extracted
// text to the documents collection. Filenames are unique per session.
type DocumentService struct {
	collection *mongo.Collection
	bucket     *gridfs.Bucket
}

// NewDocumentService creates a new document service
func NewDocumentService(mongodb *database.MongoDB) *DocumentService {
	return &DocumentService{
		collection: mongodb.Collection(database.CollectionDocuments),
		bucket:     mongodb.Bucket(),
	}
}

// gridfsFile mirrors the GridFS files collection schema for listings
type gridfsFile struct {
	ID         primitive.ObjectID `bson:"_id"`
	Filename   string             `bson:"filename"`
	Length     int64              `bson:"length"`
	UploadDate time.Time          `bson:"uploadDate"`
}

// Upload stores a batch of files for a session. Each file is handled
// independently: duplicates by filename are skipped, extraction failures
// degrade to placeholder text, and one bad file never aborts the batch.
func (s *DocumentService) Upload(ctx context.Context, sessionID string, files []models.UploadFile) (*models.UploadResult, error) {
	result := &models.UploadResult{
		Uploaded: []models.UploadedFile{},
		Skipped:  []string{},
	}

	for _, file := range files {
		count, err := s.collection.CountDocuments(ctx, bson.M{"sessionId": sessionID, "filename": file.Filename})
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicate: %w", err)
		}
		if count > 0 {
			result.Skipped = append(result.Skipped, file.Filename)
			continue
		}

		filetype := extract.Filetype(file.Filename)
		uploadedAt := time.Now()

		fileID, err := s.bucket.UploadFromStream(file.Filename, bytes.NewReader(file.Data),
			options.GridFSUpload().SetMetadata(bson.M{
				"sessionId":  sessionID,
				"filetype":   filetype,
				"uploadedAt": uploadedAt,
			}))
		if err != nil {
			return nil, fmt.Errorf("failed to store file bytes for %s: %w", file.Filename, err)
		}

		content, err := extract.Text(filetype, file.Data)
		if err != nil {
			log.Printf("⚠️  [DOCUMENTS] Extraction failed for %s: %v", file.Filename, err)
			content = fmt.Sprintf("Error extracting text: %v", err)
		}

		doc := models.Document{
			SessionID:  sessionID,
			Filename:   file.Filename,
			Filetype:   filetype,
			Content:    content,
			UploadedAt: uploadedAt,
			GridFSID:   fileID,
		}
		if _, err := s.collection.InsertOne(ctx, doc); err != nil {
			// A concurrent upload of the same filename won the unique index
			// race; drop our blob and report the file as skipped.
			if mongo.IsDuplicateKeyError(err) {
				if delErr := s.bucket.Delete(fileID); delErr != nil {
					log.Printf("⚠️  [DOCUMENTS] Failed to remove orphaned blob %s: %v", fileID.Hex(), delErr)
				}
				result.Skipped = append(result.Skipped, file.Filename)
				continue
			}
			return nil, fmt.Errorf("failed to store document record for %s: %w", file.Filename, err)
		}

		result.Uploaded = append(result.Uploaded, models.UploadedFile{
			FileID:   fileID.Hex(),
			Filename: file.Filename,
		})
	}

	return result, nil
}

// List returns upload summaries for a session, straight from GridFS metadata
func (s *DocumentService) List(ctx context.Context, sessionID string) ([]models.DocumentSummary, error) {
	cursor, err := s.bucket.Find(bson.M{"metadata.sessionId": sessionID},
		options.GridFSFind().SetSort(bson.D{{Key: "uploadDate", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []models.DocumentSummary{}
	for cursor.Next(ctx) {
		var f gridfsFile
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode file record: %w", err)
		}
		summaries = append(summaries, models.DocumentSummary{
			FileID:     f.ID.Hex(),
			Filename:   f.Filename,
			Length:     f.Length,
			UploadDate: f.UploadDate.Format(models.TimestampFormat),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate file records: %w", err)
	}

	return summaries, nil
}

// Delete removes one file's blob and its text record
func (s *DocumentService) Delete(ctx context.Context, fileID string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid file id %q", ErrDocumentNotFound, fileID)
	}

	var doc models.Document
	err = s.collection.FindOne(ctx, bson.M{"gridfsId": objID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to look up document: %w", err)
	}

	if err := s.bucket.Delete(objID); err != nil && err != gridfs.ErrFileNotFound {
		return "", fmt.Errorf("failed to delete file bytes: %w", err)
	}

	if _, err := s.collection.DeleteOne(ctx, bson.M{"gridfsId": objID}); err != nil {
		return "", fmt.Errorf("failed to delete document record: %w", err)
	}

	return doc.Filename, nil
}

// DeleteBySession removes all blobs and text records owned by a session
func (s *DocumentService) DeleteBySession(ctx context.Context, sessionID string) error {
	cursor, err := s.bucket.Find(bson.M{"metadata.sessionId": sessionID})
	if err != nil {
		return fmt.Errorf("failed to query files: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var f gridfsFile
		if err := cursor.Decode(&f); err != nil {
			continue
		}
		if err := s.bucket.Delete(f.ID); err != nil && err != gridfs.ErrFileNotFound {
			log.Printf("⚠️  [DOCUMENTS] Failed to delete blob %s: %v", f.ID.Hex(), err)
		}
	}

	if _, err := s.collection.DeleteMany(ctx, bson.M{"sessionId": sessionID}); err != nil {
		return fmt.Errorf("failed to delete document records: %w", err)
	}

	return nil
}

// AccumulatedText concatenates every document's extracted text in upload
// order, each block prefixed with a filename header. Empty string when the
// session has no documents.
func (s *DocumentService) AccumulatedText(ctx context.Context, sessionID string) (string, error) {
	cursor, err := s.collection.Find(ctx,
		bson.M{"sessionId": sessionID},
		options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: 1}}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to query documents: %w", err)
	}
	defer cursor.Close(ctx)

	var builder bytes.Buffer
	for cursor.Next(ctx) {
		var doc models.Document
		if err := cursor.Decode(&doc); err != nil {
			return "", fmt.Errorf("failed to decode document: %w", err)
		}
		builder.WriteString(fmt.Sprintf("[From %s (%s)]\n%s\n\n", doc.Filename, doc.Filetype, doc.Content))
	}
	if err := cursor.Err(); err != nil {
		return "", fmt.Errorf("failed to iterate documents: %w", err)
	}

	return builder.String(), nil
}
