package benchmark

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nc-news-api/internal/api"
	"github.com/nc-news-api/internal/mocks"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/service"
	"github.com/rs/zerolog"
)

// newLargeStore seeds n articles spread over the seeded topics, each with a few comments
func newLargeStore(n int) *mocks.Store {
	store := mocks.NewSeededStore()
	topics := []string{"mitch", "cats"}
	base := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	commentID := int64(100)
	for i := 0; i < n; i++ {
		id := int64(100 + i)
		store.AddArticle(models.Article{
			ArticleID: id,
			Title:     fmt.Sprintf("Article %d", i),
			Topic:     topics[i%len(topics)],
			Author:    "rogersop",
			Body:      "Benchmark body",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		for j := 0; j < 3; j++ {
			store.AddComment(models.Comment{
				CommentID: commentID,
				ArticleID: id,
				Author:    "icellusedkars",
				Body:      "Benchmark comment",
				CreatedAt: base.Add(time.Duration(i*3+j) * time.Second),
			})
			commentID++
		}
	}
	return store
}

func newRouter(store *mocks.Store) *gin.Engine {
	services := service.NewServices(mocks.NewRepositories(store), zerolog.Nop())
	return api.NewRouter(services, nil, gin.TestMode, zerolog.Nop())
}

// BenchmarkListArticles benchmarks the article listing through the full middleware chain
func BenchmarkListArticles(b *testing.B) {
	router := newRouter(newLargeStore(1000))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/articles?topic=mitch", nil))
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// BenchmarkGetArticle benchmarks the concurrent row and count lookup
func BenchmarkGetArticle(b *testing.B) {
	services := service.NewServices(mocks.NewRepositories(newLargeStore(1000)), zerolog.Nop())
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := services.Article.GetArticle(ctx, 100+int64(i%1000)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPostCommentParallel benchmarks concurrent comment creation
func BenchmarkPostCommentParallel(b *testing.B) {
	router := newRouter(mocks.NewSeededStore())
	body := `{"username":"lurker","body":"benchmark"}`

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req := httptest.NewRequest("POST", "/api/articles/1/comments", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusCreated {
				b.Errorf("unexpected status %d", w.Code)
			}
		}
	})
}
