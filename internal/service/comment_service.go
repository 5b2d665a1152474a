package service

import (
	"context"

	"github.com/nc-news-api/internal/apierror"
	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	log      zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(comments repository.CommentRepository, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListComments lists an article's comments, newest first.
// No comments and no such article both yield ErrCommentsNotFound.
func (s *commentService) ListComments(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		if database.IsInvalidTextRepresentation(err) || database.IsForeignKeyViolation(err) {
			return nil, apierror.ErrInvalidArticleID.Wrap(err)
		}
		return nil, err
	}

	if len(comments) == 0 {
		return nil, apierror.ErrCommentsNotFound
	}

	return comments, nil
}

// AddComment posts a comment on an article
func (s *commentService) AddComment(ctx context.Context, articleID int64, comment *models.NewComment) (*models.Comment, error) {
	if !comment.Valid() {
		return nil, apierror.ErrCommentFieldsRequired
	}

	created, err := s.comments.Create(ctx, articleID, comment)
	if err != nil {
		switch {
		case database.IsForeignKeyViolation(err):
			if database.ViolatedConstraint(err) == repository.CommentAuthorFK {
				return nil, apierror.ErrUserNotFound.Wrap(err)
			}
			return nil, apierror.ErrArticleNotFound.Wrap(err)
		case database.IsInvalidTextRepresentation(err):
			return nil, apierror.ErrInvalidArticleID.Wrap(err)
		}
		return nil, err
	}
	if created == nil {
		return nil, apierror.ErrArticleNotFound
	}

	s.log.Info().
		Int64("comment_id", created.CommentID).
		Int64("article_id", articleID).
		Str("author", created.Author).
		Msg("Comment created")

	return created, nil
}

// DeleteComment removes a comment by id
func (s *commentService) DeleteComment(ctx context.Context, id int64) error {
	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		if database.IsInvalidTextRepresentation(err) {
			return apierror.ErrInvalidCommentID.Wrap(err)
		}
		return err
	}
	if deleted == nil {
		return apierror.ErrCommentNotFound
	}

	s.log.Info().Int64("comment_id", id).Msg("Comment deleted")
	return nil
}
