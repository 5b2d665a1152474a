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
	"github.com/nc-news-api/internal/repository"
	"github.com/nc-news-api/internal/service"
	"github.com/rs/zerolog"
)

func newTestServices(store *mocks.Store) (*service.Services, *repository.Repositories) {
	repos := mocks.NewRepositories(store)
	return service.NewServices(repos, zerolog.Nop()), repos
}

func TestArticleService_GetArticle(t *testing.T) {
	services, _ := newTestServices(mocks.NewSeededStore())

	article, err := services.Article.GetArticle(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetArticle failed: %v", err)
	}
	if article.ArticleID != 1 {
		t.Errorf("Expected article 1, got %d", article.ArticleID)
	}
	if article.CommentCount != 3 {
		t.Errorf("Expected 3 comments, got %d", article.CommentCount)
	}
	if article.Votes != 100 {
		t.Errorf("Expected 100 votes, got %d", article.Votes)
	}
}

func TestArticleService_GetArticle_NotFound(t *testing.T) {
	services, _ := newTestServices(mocks.NewSeededStore())

	_, err := services.Article.GetArticle(context.Background(), 9999)
	if !errors.Is(err, apierror.ErrArticleNotFound) {
		t.Errorf("Expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleService_GetArticle_DriverErrors(t *testing.T) {
	store := mocks.NewSeededStore()

	t.Run("invalid text representation", func(t *testing.T) {
		services, repos := newTestServices(store)
		repos.Article.(*mocks.MockArticleRepository).Err = &pq.Error{Code: database.CodeInvalidTextRepresentation}

		_, err := services.Article.GetArticle(context.Background(), 1)
		if !errors.Is(err, apierror.ErrInvalidArticleID) {
			t.Errorf("Expected ErrInvalidArticleID, got %v", err)
		}
	})

	t.Run("count failure", func(t *testing.T) {
		services, repos := newTestServices(store)
		boom := errors.New("connection reset")
		repos.Article.(*mocks.MockArticleRepository).CountErr = boom

		_, err := services.Article.GetArticle(context.Background(), 1)
		if !errors.Is(err, boom) {
			t.Errorf("Expected storage error, got %v", err)
		}
		if _, ok := apierror.From(err); ok {
			t.Error("Storage failure should not be an API error")
		}
	})
}

func TestArticleService_ListArticles(t *testing.T) {
	services, _ := newTestServices(mocks.NewSeededStore())

	tests := []struct {
		name    string
		filter  models.ArticleFilter
		wantLen int
		wantErr error
	}{
		{"all articles", models.ArticleFilter{}, 5, nil},
		{"mitch", models.ArticleFilter{Topic: "mitch"}, 4, nil},
		{"cats", models.ArticleFilter{Topic: "cats"}, 1, nil},
		{"topic without articles", models.ArticleFilter{Topic: "paper"}, 0, apierror.ErrNoArticlesForTopic},
		{"unknown topic", models.ArticleFilter{Topic: "not-a-topic"}, 0, apierror.ErrNoArticlesForTopic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles, err := services.Article.ListArticles(context.Background(), tt.filter)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListArticles failed: %v", err)
			}
			if len(articles) != tt.wantLen {
				t.Errorf("Expected %d articles, got %d", tt.wantLen, len(articles))
			}
		})
	}
}

func TestArticleService_ListArticles_EmptyUnfiltered(t *testing.T) {
	services, _ := newTestServices(mocks.NewStore())

	articles, err := services.Article.ListArticles(context.Background(), models.ArticleFilter{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if articles == nil || len(articles) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", articles)
	}
}

func TestArticleService_UpdateVotes(t *testing.T) {
	store := mocks.NewSeededStore()
	services, _ := newTestServices(store)

	article, err := services.Article.UpdateVotes(context.Background(), 1, -25)
	if err != nil {
		t.Fatalf("UpdateVotes failed: %v", err)
	}
	if article.Votes != 75 {
		t.Errorf("Expected 75 votes, got %d", article.Votes)
	}
	if store.Votes(1) != 75 {
		t.Errorf("Store not updated, got %d", store.Votes(1))
	}

	_, err = services.Article.UpdateVotes(context.Background(), 9999, 1)
	if !errors.Is(err, apierror.ErrArticleNotFound) {
		t.Errorf("Expected ErrArticleNotFound, got %v", err)
	}
}
