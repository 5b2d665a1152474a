package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nc-news-api/internal/apierror"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, err := parseID(c.Param("article_id"), apierror.ErrInvalidArticleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.services.Comment.ListComments(c.Request.Context(), articleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// AddComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	articleID, err := parseID(c.Param("article_id"), apierror.ErrInvalidArticleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req models.NewComment
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		_ = c.Error(apierror.ErrCommentFieldsRequired)
		return
	}

	comment, err := h.services.Comment.AddComment(c.Request.Context(), articleID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := parseID(c.Param("comment_id"), apierror.ErrInvalidCommentID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Comment.DeleteComment(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
