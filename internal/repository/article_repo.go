package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

const articleColumns = `article_id, title, topic, author, body, created_at, votes, article_img_url`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// GetByID retrieves an article by primary key
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE article_id = $1`

	var article models.Article
	err := r.db.GetContext(ctx, &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select article %d: %w", id, err)
	}

	return &article, nil
}

// CountComments counts the comments attached to an article
func (r *articleRepo) CountComments(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM comments WHERE article_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("count comments for article %d: %w", id, err)
	}
	return n, nil
}

// List retrieves article summaries with their comment counts, newest first.
// Articles without comments are kept by the left join with a count of 0.
func (r *articleRepo) List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error) {
	qb := psql.
		Select(
			"a.article_id", "a.title", "a.topic", "a.author", "a.created_at",
			"a.votes", "a.article_img_url", "COUNT(c.comment_id) AS comment_count",
		).
		From("articles a").
		LeftJoin("comments c ON c.article_id = a.article_id").
		GroupBy("a.article_id").
		OrderBy("a.created_at DESC", "a.article_id ASC")

	if filter.HasTopic() {
		qb = qb.Where(sq.Eq{"a.topic": filter.Topic})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article listing: %w", err)
	}

	articles := []models.ArticleSummary{}
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}
	return articles, nil
}

// IncrementVotes adds inc to the stored vote count in a single statement
// and returns the updated row.
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, inc int) (*models.Article, error) {
	query := `
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING ` + articleColumns

	var article models.Article
	err := r.db.GetContext(ctx, &article, query, inc, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update votes for article %d: %w", id, err)
	}

	return &article, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "articles")
}
