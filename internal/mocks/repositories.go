package mocks

import (
	"context"
	"sort"

	"github.com/lib/pq"
	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.TopicRepository   = (*MockTopicRepository)(nil)
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
)

// NewRepositories wires mock repositories over a shared store
func NewRepositories(store *Store) *repository.Repositories {
	return &repository.Repositories{
		Topic:   NewMockTopicRepository(store),
		Article: NewMockArticleRepository(store),
		Comment: NewMockCommentRepository(store),
		User:    NewMockUserRepository(store),
	}
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Store *Store
	Err   error
}

func NewMockTopicRepository(store *Store) *MockTopicRepository {
	return &MockTopicRepository{Store: store}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return append([]models.Topic{}, m.Store.Topics...), nil
}

func (m *MockTopicRepository) Count(ctx context.Context) (int, error) {
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return len(m.Store.Topics), m.Err
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Store *Store
	Err   error
	// CountErr fails CountComments only, to exercise partial failures
	CountErr  error
	ListCalls int
}

func NewMockArticleRepository(store *Store) *MockArticleRepository {
	return &MockArticleRepository{Store: store}
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	a, ok := m.Store.Articles[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) CountComments(ctx context.Context, id int64) (int64, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return m.Store.commentCount(id), nil
}

func (m *MockArticleRepository) List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleSummary, error) {
	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	summaries := []models.ArticleSummary{}
	for _, a := range m.Store.Articles {
		if filter.HasTopic() && a.Topic != filter.Topic {
			continue
		}
		summaries = append(summaries, models.ArticleSummary{
			ArticleID:     a.ArticleID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  m.Store.commentCount(a.ArticleID),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ArticleID < summaries[j].ArticleID
		}
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, inc int) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.Lock()
	defer m.Store.mu.Unlock()
	a, ok := m.Store.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += inc
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return len(m.Store.Articles), m.Err
}

// MockCommentRepository is a mock implementation of CommentRepository.
// Create enforces both foreign keys the way PostgreSQL reports them.
type MockCommentRepository struct {
	Store *Store
	Err   error
}

func NewMockCommentRepository(store *Store) *MockCommentRepository {
	return &MockCommentRepository{Store: store}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()

	comments := []models.Comment{}
	for _, c := range m.Store.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int64, comment *models.NewComment) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.Lock()
	defer m.Store.mu.Unlock()

	if _, ok := m.Store.Articles[articleID]; !ok {
		return nil, &pq.Error{Code: database.CodeForeignKeyViolation, Constraint: "comments_article_id_fkey"}
	}
	if !m.Store.userExists(comment.Username) {
		return nil, &pq.Error{Code: database.CodeForeignKeyViolation, Constraint: repository.CommentAuthorFK}
	}

	if m.Store.nextCommentID == 0 {
		m.Store.nextCommentID = 1
	}
	created := &models.Comment{
		CommentID: m.Store.nextCommentID,
		ArticleID: articleID,
		Author:    comment.Username,
		Body:      comment.Body,
		CreatedAt: timeNow(),
	}
	m.Store.Comments[created.CommentID] = created
	m.Store.nextCommentID++

	copied := *created
	return &copied, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.Lock()
	defer m.Store.mu.Unlock()

	c, ok := m.Store.Comments[id]
	if !ok {
		return nil, nil
	}
	delete(m.Store.Comments, id)
	return c, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return len(m.Store.Comments), m.Err
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Store *Store
	Err   error
}

func NewMockUserRepository(store *Store) *MockUserRepository {
	return &MockUserRepository{Store: store}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return append([]models.User{}, m.Store.Users...), nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	m.Store.mu.RLock()
	defer m.Store.mu.RUnlock()
	return len(m.Store.Users), m.Err
}
