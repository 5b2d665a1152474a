package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nc-news-api/internal/apierror"
	"github.com/nc-news-api/internal/mocks"
)

func TestTopicService_ListTopics(t *testing.T) {
	services, _ := newTestServices(mocks.NewSeededStore())

	topics, err := services.Topic.ListTopics(context.Background())
	if err != nil {
		t.Fatalf("ListTopics failed: %v", err)
	}
	if len(topics) != 3 {
		t.Errorf("Expected 3 topics, got %d", len(topics))
	}
}

func TestTopicService_ListTopics_Failure(t *testing.T) {
	services, repos := newTestServices(mocks.NewSeededStore())
	boom := errors.New("relation \"topics\" does not exist")
	repos.Topic.(*mocks.MockTopicRepository).Err = boom

	if _, err := services.Topic.ListTopics(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected storage error, got %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	services, _ := newTestServices(mocks.NewSeededStore())

	users, err := services.User.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 4 {
		t.Errorf("Expected 4 users, got %d", len(users))
	}

	empty, _ := newTestServices(mocks.NewStore())
	if _, err := empty.User.ListUsers(context.Background()); !errors.Is(err, apierror.ErrNoUsersFound) {
		t.Errorf("Expected ErrNoUsersFound, got %v", err)
	}
}

func TestStatsService_TableCounts(t *testing.T) {
	services, repos := newTestServices(mocks.NewSeededStore())

	counts, err := services.Stats.TableCounts(context.Background())
	if err != nil {
		t.Fatalf("TableCounts failed: %v", err)
	}
	if counts.Topics != 3 || counts.Articles != 5 || counts.Comments != 6 || counts.Users != 4 {
		t.Errorf("Unexpected counts: %+v", counts)
	}

	boom := errors.New("timeout")
	repos.User.(*mocks.MockUserRepository).Err = boom
	if _, err := services.Stats.TableCounts(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected storage error, got %v", err)
	}
}
