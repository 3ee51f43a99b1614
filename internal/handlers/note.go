package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/services"
)

type NoteHandler struct {
	log     *logger.Logger
	noteSvc services.NoteService
	tagSvc  services.TagService
}

func NewNoteHandler(log *logger.Logger, noteSvc services.NoteService, tagSvc services.TagService) *NoteHandler {
	return &NoteHandler{
		log:     log.With("handler", "NoteHandler"),
		noteSvc: noteSvc,
		tagSvc:  tagSvc,
	}
}

type createNoteRequest struct {
	Body string `json:"body"`
}

// POST /api/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	note, err := h.noteSvc.CreateNote(c.Request.Context(), req.Body)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, note)
}

// GET /api/notes?tags=a,b&is_review=true&fav_only=true
func (h *NoteHandler) ListNotes(c *gin.Context) {
	tags := c.Query("tags")
	isReview := c.Query("is_review") == "true"
	favOnly := c.Query("fav_only") == "true"
	notes, err := h.noteSvc.ListNotes(c.Request.Context(), tags, isReview, favOnly)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, notes)
}

// GET /api/notes/counts
func (h *NoteHandler) NoteCounts(c *gin.Context) {
	counts, err := h.noteSvc.NoteCounts(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, counts)
}

// GET /api/notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	note, err := h.noteSvc.GetNote(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, note)
}

// PUT /api/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	var req services.UpdateNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	note, err := h.noteSvc.UpdateNote(c.Request.Context(), id, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, note)
}

// DELETE /api/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if err := h.noteSvc.DeleteNote(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// GET /api/tags
func (h *NoteHandler) ListTags(c *gin.Context) {
	tags, err := h.tagSvc.ListTags(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tags)
}
