package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

const commentColumns = `comment_id, article_id, author, body, votes, created_at`

// CommentAuthorFK names the constraint tying comments.author to users.username
const CommentAuthorFK = "comments_author_fkey"

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle retrieves an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE article_id = $1 ORDER BY created_at DESC`

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, articleID); err != nil {
		return nil, fmt.Errorf("select comments for article %d: %w", articleID, err)
	}
	return comments, nil
}

// Create inserts a new comment; votes and created_at take their column defaults
func (r *commentRepo) Create(ctx context.Context, articleID int64, comment *models.NewComment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	var created models.Comment
	err := r.db.GetContext(ctx, &created, query, articleID, comment.Username, comment.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert comment for article %d: %w", articleID, err)
	}

	return &created, nil
}

// Delete removes a comment and returns the deleted row
func (r *commentRepo) Delete(ctx context.Context, id int64) (*models.Comment, error) {
	query := `DELETE FROM comments WHERE comment_id = $1 RETURNING ` + commentColumns

	var deleted models.Comment
	err := r.db.GetContext(ctx, &deleted, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete comment %d: %w", id, err)
	}

	return &deleted, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "comments")
}
