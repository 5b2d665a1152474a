package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cause := errors.New("pq: insert or update violates foreign key constraint")
	wrapped := fmt.Errorf("create comment: %w", ErrArticleNotFound.Wrap(cause))

	if !errors.Is(wrapped, ErrArticleNotFound) {
		t.Error("Expected wrapped copy to match sentinel")
	}
	if errors.Is(wrapped, ErrCommentNotFound) {
		t.Error("Different messages must not match")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("Expected cause to stay reachable")
	}
}

func TestFrom(t *testing.T) {
	apiErr, ok := From(fmt.Errorf("handler: %w", ErrInvalidArticleID))
	if !ok {
		t.Fatal("Expected an API error")
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", apiErr.Status)
	}
	if apiErr.Msg != "Invalid article_id format" {
		t.Errorf("Unexpected message %q", apiErr.Msg)
	}

	if _, ok := From(errors.New("boom")); ok {
		t.Error("Plain errors are not API errors")
	}
}

func TestErrorString(t *testing.T) {
	if got := NotFound("Article not found").Error(); got != "Article not found" {
		t.Errorf("Unexpected %q", got)
	}
	if got := ErrArticleNotFound.Wrap(errors.New("no rows")).Error(); got != "Article not found: no rows" {
		t.Errorf("Unexpected %q", got)
	}
}
