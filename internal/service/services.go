package service

import (
	"context"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/rs/zerolog"
)

// Services return *apierror.Error values for every client-facing failure;
// any other error is an unexpected storage failure.

// TopicService defines the interface for topic operations
type TopicService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	GetArticle(ctx context.Context, id int64) (*models.ArticleWithCount, error)
	ListArticles(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error)
	UpdateVotes(ctx context.Context, id int64, inc int) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListComments(ctx context.Context, articleID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, articleID int64, comment *models.NewComment) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// StatsService defines the interface for the metrics endpoint
type StatsService interface {
	TableCounts(ctx context.Context) (*models.TableCounts, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	Article ArticleService
	Comment CommentService
	User    UserService
	Stats   StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos.Topic),
		Article: newArticleService(repos.Article, log),
		Comment: newCommentService(repos.Comment, log),
		User:    newUserService(repos.User),
		Stats:   newStatsService(repos),
	}
}
