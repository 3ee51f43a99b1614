package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/services"
)

type QuestionHandler struct {
	log         *logger.Logger
	questionSvc services.QuestionService
}

func NewQuestionHandler(log *logger.Logger, questionSvc services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		log:         log.With("handler", "QuestionHandler"),
		questionSvc: questionSvc,
	}
}

type createQuestionRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// POST /api/notes/:id/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	q, err := h.questionSvc.CreateQuestion(c.Request.Context(), noteID, req.Question, req.Answer)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, q)
}

// GET /api/notes/:id/questions
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	qs, err := h.questionSvc.GetQuestions(c.Request.Context(), noteID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, qs)
}

// GET /api/questions?for_review=true
func (h *QuestionHandler) GetAllQuestions(c *gin.Context) {
	forReview := c.Query("for_review") == "true"
	qs, err := h.questionSvc.GetAllQuestions(c.Request.Context(), forReview)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, qs)
}

// POST /api/questions/:id/review_good
func (h *QuestionHandler) ReviewGood(c *gin.Context) {
	h.review(c, h.questionSvc.ReviewGood)
}

// POST /api/questions/:id/review_bad
func (h *QuestionHandler) ReviewBad(c *gin.Context) {
	h.review(c, h.questionSvc.ReviewBad)
}

func (h *QuestionHandler) review(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*services.QuestionView, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	q, err := apply(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, q)
}
