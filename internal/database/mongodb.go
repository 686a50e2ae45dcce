package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	bucket   *gridfs.Bucket
	dbName   string
}

// Collection names
const (
	CollectionSessions    = "chat_sessions"
	CollectionDocuments   = "documents"
	CollectionChatHistory = "chat_history"

	// GridFS bucket for raw uploaded file bytes
	BucketFiles = "files"
)

// NewMongoDB creates a new MongoDB connection with connection pooling
func NewMongoDB(uri string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(uri)
	if dbName == "" {
		dbName = "chat_history_db"
	}

	database := client.Database(dbName)

	bucket, err := gridfs.NewBucket(database, options.GridFSBucket().SetName(BucketFiles))
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFS bucket: %w", err)
	}

	db := &MongoDB{
		client:   client,
		database: database,
		bucket:   bucket,
		dbName:   dbName,
	}

	log.Printf("✅ Connected to MongoDB database: %s", dbName)

	return db, nil
}

// extractDBName extracts the database name from a MongoDB URI
func extractDBName(uri string) string {
	// mongodb://localhost:27017/chat_history_db?authSource=admin -> chat_history_db
	rest := uri
	if idx := strings.Index(rest, "://"); idx != -1 {
		rest = rest[idx+3:]
	}

	slash := strings.Index(rest, "/")
	if slash == -1 {
		return "chat_history_db"
	}

	dbName := rest[slash+1:]
	if q := strings.Index(dbName, "?"); q != -1 {
		dbName = dbName[:q]
	}
	if dbName == "" {
		return "chat_history_db"
	}
	return dbName
}

// Initialize creates indexes for all collections
func (m *MongoDB) Initialize(ctx context.Context) error {
	log.Println("📦 Initializing MongoDB indexes...")

	// One document per filename per session. The unique index closes the
	// check-then-insert race between concurrent uploaders.
	if err := m.createIndexes(ctx, CollectionDocuments, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "filename", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "uploadedAt", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create documents indexes: %w", err)
	}

	// Chat history is read in question-arrival order
	if err := m.createIndexes(ctx, CollectionChatHistory, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "timestamp", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create chat_history indexes: %w", err)
	}

	// GridFS files are looked up by owning session
	if err := m.createIndexes(ctx, BucketFiles+".files", []mongo.IndexModel{
		{Keys: bson.D{{Key: "metadata.sessionId", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create GridFS indexes: %w", err)
	}

	log.Println("✅ MongoDB indexes initialized successfully")
	return nil
}

// createIndexes creates indexes for a collection
func (m *MongoDB) createIndexes(ctx context.Context, collectionName string, indexes []mongo.IndexModel) error {
	collection := m.database.Collection(collectionName)
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// Collection returns a collection handle
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Bucket returns the GridFS bucket holding raw file bytes
func (m *MongoDB) Bucket() *gridfs.Bucket {
	return m.bucket
}

// Client returns the underlying MongoDB client
func (m *MongoDB) Client() *mongo.Client {
	return m.client
}

// Database returns the underlying MongoDB database
func (m *MongoDB) Database() *mongo.Database {
	return m.database
}

// Close closes the MongoDB connection
func (m *MongoDB) Close(ctx context.Context) error {
	log.Println("🔌 Closing MongoDB connection...")
	return m.client.Disconnect(ctx)
}

// Ping checks if the database connection is alive
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}
