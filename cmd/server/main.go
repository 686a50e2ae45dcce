package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/krishna7838/AI-chatbot/internal/config"
	"github.com/krishna7838/AI-chatbot/internal/database"
	"github.com/krishna7838/AI-chatbot/internal/handlers"
	"github.com/krishna7838/AI-chatbot/internal/logging"
	"github.com/krishna7838/AI-chatbot/internal/services"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting document chat server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	}

	// Load configuration
	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s, Model: %s)", cfg.Port, cfg.CompletionModel)

	if cfg.MongoURI == "" {
		log.Fatal("❌ MONGODB_URI environment variable is required")
	}
	if cfg.CompletionAPIKey == "" {
		log.Println("⚠️  COMPLETION_API_KEY not set - completion calls will be rejected by the provider")
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(context.Background())

	if err := db.Initialize(context.Background()); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize services
	documentService := services.NewDocumentService(db)
	chatLogService := services.NewChatLogService(db)
	sessionService := services.NewSessionService(db, documentService, chatLogService)
	completionClient := services.NewCompletionClient(
		cfg.CompletionBaseURL,
		cfg.CompletionAPIKey,
		cfg.CompletionModel,
		time.Duration(cfg.CompletionTimeout)*time.Second,
	)
	chatService := services.NewChatService(sessionService, documentService, chatLogService, completionClient)
	log.Println("✅ Services initialized")

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI-chatbot v1.0",
		ReadTimeout:  5 * time.Minute,  // completion calls can be slow
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    50 * 1024 * 1024, // 50MB for document upload batches
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Prometheus metrics middleware
	prometheus := fiberprometheus.New("ai_chatbot")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// CORS configuration with environment-based origins
	allowedOrigins := cfg.AllowedOrigins
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173,http://localhost:3000"
		log.Println("⚠️  ALLOWED_ORIGINS not set, using development defaults")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	chatHandler := handlers.NewChatHandler(chatService, chatLogService)
	documentHandler := handlers.NewDocumentHandler(documentService)

	// Routes
	app.Get("/health", healthHandler.Handle)
	app.Get("/sessions", sessionHandler.List)
	app.Post("/start_session", sessionHandler.Create)
	app.Post("/switch_mode", sessionHandler.SwitchMode)
	app.Delete("/delete_session/:session_id", sessionHandler.Delete)
	app.Post("/chat", chatHandler.Ask)
	app.Post("/history", chatHandler.History)
	app.Post("/upload", documentHandler.Upload)
	app.Post("/documents", documentHandler.List)
	app.Delete("/delete_document/:file_id", documentHandler.Delete)

	log.Printf("📡 Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", cfg.Port)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️  Error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
