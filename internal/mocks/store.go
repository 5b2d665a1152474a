package mocks

import (
	"sync"
	"time"

	"github.com/nc-news-api/internal/models"
)

// timeNow stamps created comments
var timeNow = time.Now

// Store is the in-memory state shared by the mock repositories
type Store struct {
	mu            sync.RWMutex
	Topics        []models.Topic
	Users         []models.User
	Articles      map[int64]*models.Article
	Comments      map[int64]*models.Comment
	nextCommentID int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Articles: make(map[int64]*models.Article),
		Comments: make(map[int64]*models.Comment),
	}
}

// AddArticle inserts or replaces an article
func (s *Store) AddArticle(a models.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Articles[a.ArticleID] = &a
}

// AddComment inserts or replaces a comment
func (s *Store) AddComment(c models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Comments[c.CommentID] = &c
	if c.CommentID >= s.nextCommentID {
		s.nextCommentID = c.CommentID + 1
	}
}

// Votes returns an article's current vote count
func (s *Store) Votes(articleID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.Articles[articleID]; ok {
		return a.Votes
	}
	return 0
}

func (s *Store) userExists(username string) bool {
	for _, u := range s.Users {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (s *Store) commentCount(articleID int64) int64 {
	var n int64
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

// NewSeededStore returns a store holding a small news data set:
// three topics (paper has no articles), four users, five articles
// and comments on articles 1, 3 and 5.
func NewSeededStore() *Store {
	s := NewStore()
	base := time.Date(2020, 11, 3, 9, 12, 0, 0, time.UTC)

	s.Topics = []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}

	s.Users = []models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}

	img := "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"
	articles := []models.Article{
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge",
			Body: "I find this existence challenging", CreatedAt: base.Add(-48 * time.Hour), Votes: 100, ArticleImgURL: img},
		{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars",
			Body: "Call me Mitchell.", CreatedAt: base.Add(-24 * time.Hour), Votes: 0, ArticleImgURL: img},
		{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars",
			Body: "some gifs", CreatedAt: base, Votes: 0, ArticleImgURL: img},
		{ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop",
			Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: base.Add(-72 * time.Hour), Votes: 0, ArticleImgURL: img},
		{ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop",
			Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: base.Add(-12 * time.Hour), Votes: 0, ArticleImgURL: img},
	}
	for _, a := range articles {
		s.AddArticle(a)
	}

	comments := []models.Comment{
		{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: base.Add(-2 * time.Hour)},
		{CommentID: 2, ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: base.Add(-1 * time.Hour)},
		{CommentID: 3, ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie", Votes: 100, CreatedAt: base.Add(-3 * time.Hour)},
		{CommentID: 4, ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", Votes: 0, CreatedAt: base.Add(-4 * time.Hour)},
		{CommentID: 5, ArticleID: 3, Author: "rogersop", Body: "git push origin master", Votes: 0, CreatedAt: base.Add(-5 * time.Hour)},
		{CommentID: 6, ArticleID: 5, Author: "icellusedkars", Body: "What do you see? I have no idea where this will lead us.", Votes: 16, CreatedAt: base.Add(-6 * time.Hour)},
	}
	for _, c := range comments {
		s.AddComment(c)
	}

	return s
}
