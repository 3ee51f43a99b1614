package main

import (
	"fmt"
	"os"
	"time"

	"github.com/odosui/mt/internal/config"
	"github.com/odosui/mt/internal/db"
	"github.com/odosui/mt/internal/handlers"
	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/middleware"
	"github.com/odosui/mt/internal/repos"
	"github.com/odosui/mt/internal/review"
	"github.com/odosui/mt/internal/server"
	"github.com/odosui/mt/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg, err := config.Load(log)
	if err != nil {
		log.Error("Could not load config", "error", err)
		os.Exit(1)
	}

	// Database
	dbService, err := db.New(cfg, log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	noteRepo := repos.NewNoteRepo(theDB, log)
	cardRepo := repos.NewFlashcardRepo(theDB, log)

	// Review policies
	notePolicy := review.Policy(review.DefaultNotePolicy())
	if len(cfg.ReviewPeriods) > 0 {
		tp, err := review.NewTablePolicy(cfg.ReviewPeriods)
		if err != nil {
			log.Error("Invalid review_periods in config", "error", err)
			os.Exit(1)
		}
		notePolicy = tp
	}
	cardPolicy := review.NewGeometricPolicy()

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(theDB, log, userRepo, cfg.JWTSecret, time.Duration(cfg.AccessTokenTTL)*time.Second, nil)
	noteService := services.NewNoteService(theDB, log, noteRepo, cardRepo, notePolicy, nil)
	questionService := services.NewQuestionService(theDB, log, noteRepo, cardRepo, cardPolicy, nil)
	reviewService := services.NewReviewService(theDB, log, noteRepo, cardRepo, notePolicy, cardPolicy, noteService, nil)
	tagService := services.NewTagService(theDB, log, noteRepo)

	// Handlers
	healthcheckHandler := handlers.NewHealthcheckHandler()
	authHandler := handlers.NewAuthHandler(log, authService)
	noteHandler := handlers.NewNoteHandler(log, noteService, tagService)
	reviewHandler := handlers.NewReviewHandler(log, reviewService)
	questionHandler := handlers.NewQuestionHandler(log, questionService)
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		CORSOrigins:        cfg.CORSOrigins,
		HealthcheckHandler: healthcheckHandler,
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		NoteHandler:        noteHandler,
		ReviewHandler:      reviewHandler,
		QuestionHandler:    questionHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("Starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
