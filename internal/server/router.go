package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/odosui/mt/internal/handlers"
	"github.com/odosui/mt/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins        []string
	HealthcheckHandler *handlers.HealthcheckHandler
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	NoteHandler        *handlers.NoteHandler
	ReviewHandler      *handlers.ReviewHandler
	QuestionHandler    *handlers.QuestionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)
	router.POST("/api/register", cfg.AuthHandler.Register)
	router.POST("/api/login", cfg.AuthHandler.Login)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	// Notes
	api.GET("/notes", cfg.NoteHandler.ListNotes)
	api.POST("/notes", cfg.NoteHandler.CreateNote)
	api.GET("/notes/counts", cfg.NoteHandler.NoteCounts)
	api.GET("/notes/:id", cfg.NoteHandler.GetNote)
	api.PUT("/notes/:id", cfg.NoteHandler.UpdateNote)
	api.DELETE("/notes/:id", cfg.NoteHandler.DeleteNote)
	// Reviews
	api.GET("/reviews", cfg.ReviewHandler.Counts)
	api.POST("/reviews/:id/done", cfg.ReviewHandler.ReviewNote)
	// Questions
	api.GET("/questions", cfg.QuestionHandler.GetAllQuestions)
	api.GET("/notes/:id/questions", cfg.QuestionHandler.GetQuestions)
	api.POST("/notes/:id/questions", cfg.QuestionHandler.CreateQuestion)
	api.POST("/questions/:id/review_good", cfg.QuestionHandler.ReviewGood)
	api.POST("/questions/:id/review_bad", cfg.QuestionHandler.ReviewBad)
	// Tags
	api.GET("/tags", cfg.NoteHandler.ListTags)

	return router
}
