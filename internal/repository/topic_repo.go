package repository

import (
	"context"
	"fmt"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List retrieves every topic
func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	if err := r.db.SelectContext(ctx, &topics, `SELECT slug, description FROM topics`); err != nil {
		return nil, fmt.Errorf("select topics: %w", err)
	}
	return topics, nil
}

// Count returns the total number of topics
func (r *topicRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "topics")
}
