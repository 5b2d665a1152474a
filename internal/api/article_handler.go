package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nc-news-api/internal/apierror"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	raw := c.Param("article_id")
	if raw == "" {
		_ = c.Error(apierror.ErrArticleIDMissing)
		return
	}

	id, err := parseID(raw, apierror.ErrInvalidArticleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.services.Article.GetArticle(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// ListArticles handles GET /api/articles?topic=...
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := models.ArticleFilter{Topic: c.Query("topic")}

	articles, err := h.services.Article.ListArticles(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// UpdateVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	id, err := parseID(c.Param("article_id"), apierror.ErrInvalidArticleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req models.VoteUpdate
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		h.log.Debug().Err(err).Int64("article_id", id).Msg("Rejected vote update body")
		_ = c.Error(apierror.ErrInvalidIncVotes)
		return
	}

	article, err := h.services.Article.UpdateVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// parseID parses a numeric path identifier, answering invalid otherwise
func parseID(raw string, invalid *apierror.Error) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalid
	}
	return id, nil
}
