package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nc-news-api/internal/apierror"
	"github.com/nc-news-api/internal/service"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// Pool reports connection pool statistics for the metrics endpoint
type Pool interface {
	Stats() sql.DBStats
}

// NewRouter creates and configures the Gin router. pool may be nil.
func NewRouter(services *service.Services, pool Pool, mode string, log zerolog.Logger) *gin.Engine {
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(errorMiddleware(log))

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	catalogHandler := NewCatalogHandler(services)

	api := router.Group("/api")
	{
		api.GET("", endpointsHandler(mustLoadEndpoints()))
		api.GET("/healthcheck", healthCheck)
		api.GET("/metrics", metricsHandler(services, pool))

		api.GET("/topics", catalogHandler.ListTopics)
		api.GET("/users", catalogHandler.ListUsers)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.UpdateVotes)
			articles.GET("/:article_id/comments", commentHandler.ListComments)
			articles.POST("/:article_id/comments", commentHandler.AddComment)
		}

		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)
	}

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apierror.ErrRouteNotFound)
	})

	return router
}

// healthCheck confirms the process is serving; it checks no dependencies
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "server is online"})
}

// metricsHandler returns table counts and pool statistics
func metricsHandler(services *service.Services, pool Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := services.Stats.TableCounts(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}

		body := gin.H{
			"database":  counts,
			"timestamp": time.Now().Format(time.RFC3339),
		}
		if pool != nil {
			stats := pool.Stats()
			body["pool"] = gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
				"wait_count":       stats.WaitCount,
			}
		}

		c.JSON(http.StatusOK, body)
	}
}

// errorMiddleware renders the last error a handler forwarded with c.Error.
// API errors keep their status and message; anything else is a 500.
func errorMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if apiErr, ok := apierror.From(err); ok {
			c.JSON(apiErr.Status, gin.H{"msg": apiErr.Msg})
			return
		}

		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal Server Error"})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"msg": "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware propagates or assigns a request id
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
