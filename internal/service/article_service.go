package service

import (
	"context"

	"github.com/nc-news-api/internal/apierror"
	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(articles repository.ArticleRepository, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// GetArticle fetches the article row and its comment count concurrently
func (s *articleService) GetArticle(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	var (
		article *models.Article
		count   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		article, err = s.articles.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.articles.CountComments(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, articleIDError(err)
	}
	if article == nil {
		return nil, apierror.ErrArticleNotFound
	}

	return &models.ArticleWithCount{Article: *article, CommentCount: count}, nil
}

// ListArticles lists article summaries; an empty result is only an error
// when the listing was filtered by topic.
func (s *articleService) ListArticles(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error) {
	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(articles) == 0 && filter.HasTopic() {
		s.log.Debug().Str("topic", filter.Topic).Msg("No articles for topic")
		return nil, apierror.ErrNoArticlesForTopic
	}

	return articles, nil
}

// UpdateVotes increments an article's votes by inc, which may be negative
func (s *articleService) UpdateVotes(ctx context.Context, id int64, inc int) (*models.Article, error) {
	article, err := s.articles.IncrementVotes(ctx, id, inc)
	if err != nil {
		return nil, articleIDError(err)
	}
	if article == nil {
		return nil, apierror.ErrArticleNotFound
	}

	s.log.Debug().
		Int64("article_id", id).
		Int("inc_votes", inc).
		Int("votes", article.Votes).
		Msg("Votes updated")

	return article, nil
}

// articleIDError maps a driver rejection of the article key to a 400
func articleIDError(err error) error {
	if database.IsInvalidTextRepresentation(err) {
		return apierror.ErrInvalidArticleID.Wrap(err)
	}
	return err
}
