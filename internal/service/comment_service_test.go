package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/nc-news-api/internal/apierror"
	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/mocks"
	"github.com/nc-news-api/internal/models"
)

func TestCommentService_ListComments(t *testing.T) {
	services, _ := newTestServices(mocks.NewSeededStore())

	comments, err := services.Comment.ListComments(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("Expected 3 comments, got %d", len(comments))
	}
	for i := 1; i < len(comments); i++ {
		if comments[i].CreatedAt.After(comments[i-1].CreatedAt) {
			t.Errorf("Comments not newest first at index %d", i)
		}
	}
}

func TestCommentService_ListComments_Empty(t *testing.T) {
	services, _ := newTestServices(mocks.NewSeededStore())

	// Article 2 exists without comments; 9999 does not exist. Both read the same.
	for _, id := range []int64{2, 9999} {
		_, err := services.Comment.ListComments(context.Background(), id)
		if !errors.Is(err, apierror.ErrCommentsNotFound) {
			t.Errorf("Article %d: expected ErrCommentsNotFound, got %v", id, err)
		}
	}
}

func TestCommentService_ListComments_DriverErrors(t *testing.T) {
	services, repos := newTestServices(mocks.NewSeededStore())
	comments := repos.Comment.(*mocks.MockCommentRepository)

	comments.Err = &pq.Error{Code: database.CodeForeignKeyViolation}
	if _, err := services.Comment.ListComments(context.Background(), 1); !errors.Is(err, apierror.ErrInvalidArticleID) {
		t.Errorf("Expected ErrInvalidArticleID for FK violation, got %v", err)
	}

	comments.Err = &pq.Error{Code: database.CodeInvalidTextRepresentation}
	if _, err := services.Comment.ListComments(context.Background(), 1); !errors.Is(err, apierror.ErrInvalidArticleID) {
		t.Errorf("Expected ErrInvalidArticleID for invalid text, got %v", err)
	}
}

func TestCommentService_AddComment(t *testing.T) {
	store := mocks.NewSeededStore()
	services, _ := newTestServices(store)

	created, err := services.Comment.AddComment(context.Background(), 2, &models.NewComment{
		Username: "lurker",
		Body:     "First!",
	})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if created.CommentID != 7 {
		t.Errorf("Expected comment id 7, got %d", created.CommentID)
	}
	if created.ArticleID != 2 || created.Author != "lurker" || created.Votes != 0 {
		t.Errorf("Unexpected comment: %+v", created)
	}

	comments, err := services.Comment.ListComments(context.Background(), 2)
	if err != nil || len(comments) != 1 {
		t.Errorf("Expected the new comment to be listed, got %v, %v", comments, err)
	}
}

func TestCommentService_AddComment_Errors(t *testing.T) {
	services, _ := newTestServices(mocks.NewSeededStore())

	tests := []struct {
		name      string
		articleID int64
		comment   models.NewComment
		wantErr   error
	}{
		{"missing body", 1, models.NewComment{Username: "butter_bridge"}, apierror.ErrCommentFieldsRequired},
		{"missing username", 1, models.NewComment{Body: "hello"}, apierror.ErrCommentFieldsRequired},
		{"unknown article", 9999, models.NewComment{Username: "butter_bridge", Body: "hello"}, apierror.ErrArticleNotFound},
		{"unknown user", 1, models.NewComment{Username: "ghost", Body: "hello"}, apierror.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.Comment.AddComment(context.Background(), tt.articleID, &tt.comment)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCommentService_DeleteComment(t *testing.T) {
	store := mocks.NewSeededStore()
	services, _ := newTestServices(store)

	if err := services.Comment.DeleteComment(context.Background(), 6); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	if _, ok := store.Comments[6]; ok {
		t.Error("Comment 6 should be removed from the store")
	}

	if err := services.Comment.DeleteComment(context.Background(), 6); !errors.Is(err, apierror.ErrCommentNotFound) {
		t.Errorf("Expected ErrCommentNotFound on second delete, got %v", err)
	}
}
