package service

import (
	"context"

	"github.com/nc-news-api/internal/apierror"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
)

type topicService struct {
	topics repository.TopicRepository
}

func newTopicService(topics repository.TopicRepository) *topicService {
	return &topicService{topics: topics}
}

// ListTopics returns every topic
func (s *topicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

type userService struct {
	users repository.UserRepository
}

func newUserService(users repository.UserRepository) *userService {
	return &userService{users: users}
}

// ListUsers returns every user; an empty table is reported as not found
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apierror.ErrNoUsersFound
	}
	return users, nil
}

type statsService struct {
	repos *repository.Repositories
}

func newStatsService(repos *repository.Repositories) *statsService {
	return &statsService{repos: repos}
}

// TableCounts returns the row count of every table
func (s *statsService) TableCounts(ctx context.Context) (*models.TableCounts, error) {
	var (
		counts models.TableCounts
		err    error
	)

	if counts.Topics, err = s.repos.Topic.Count(ctx); err != nil {
		return nil, err
	}
	if counts.Articles, err = s.repos.Article.Count(ctx); err != nil {
		return nil, err
	}
	if counts.Comments, err = s.repos.Comment.Count(ctx); err != nil {
		return nil, err
	}
	if counts.Users, err = s.repos.User.Count(ctx); err != nil {
		return nil, err
	}

	return &counts, nil
}
