package models

import (
	"time"
)

// Article represents a news article
type Article struct {
	ArticleID     int64     `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
}

// ArticleWithCount is an article merged with its derived comment count.
// comment_count is rendered as a numeric string, matching COUNT's bigint output.
type ArticleWithCount struct {
	Article
	CommentCount int64 `json:"comment_count,string"`
}

// ArticleSummary is a listing row: every article field except body,
// plus the comment count.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int64     `json:"comment_count,string" db:"comment_count"`
}

// ArticleFilter holds optional listing filters
type ArticleFilter struct {
	Topic string
}

// HasTopic reports whether the listing is scoped to a topic
func (f ArticleFilter) HasTopic() bool {
	return f.Topic != ""
}

// VoteUpdate is the PATCH /api/articles/:article_id request body
type VoteUpdate struct {
	IncVotes *int `json:"inc_votes"`
}
