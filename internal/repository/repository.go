package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// psql builds statements with PostgreSQL $n placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Lookups that target a single row return (nil, nil) when no row matches.

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Count(ctx context.Context) (int, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	CountComments(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error)
	IncrementVotes(ctx context.Context, id int64, inc int) (*models.Article, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, comment *models.NewComment) (*models.Comment, error)
	Delete(ctx context.Context, id int64) (*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	Article ArticleRepository
	Comment CommentRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		User:    NewUserRepo(db),
	}
}

func count(ctx context.Context, db *database.DB, table string) (int, error) {
	var n int
	query, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}
	err = db.GetContext(ctx, &n, query, args...)
	return n, err
}
