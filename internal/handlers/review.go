package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/services"
)

type ReviewHandler struct {
	log       *logger.Logger
	reviewSvc services.ReviewService
}

func NewReviewHandler(log *logger.Logger, reviewSvc services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		log:       log.With("handler", "ReviewHandler"),
		reviewSvc: reviewSvc,
	}
}

// GET /api/reviews
func (h *ReviewHandler) Counts(c *gin.Context) {
	counts, err := h.reviewSvc.Counts(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, counts)
}

// POST /api/reviews/:id/done
func (h *ReviewHandler) ReviewNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	note, err := h.reviewSvc.ReviewNote(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, note)
}
