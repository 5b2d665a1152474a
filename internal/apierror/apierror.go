// Package apierror defines the typed errors handlers and services return.
// The router's error middleware renders them as {"msg": ...} with Status.
package apierror

import (
	"errors"
	"net/http"
)

// Error is an error with an HTTP status and a client-facing message
type Error struct {
	Status int
	Msg    string
	Err    error // optional underlying cause, never shown to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on status and message so wrapped copies of a sentinel still compare equal
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Msg == t.Msg
}

// Wrap returns a copy of e carrying cause
func (e *Error) Wrap(cause error) *Error {
	return &Error{Status: e.Status, Msg: e.Msg, Err: cause}
}

// BadRequest builds a 400 error
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

// NotFound builds a 404 error
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

// From extracts an *Error from err's chain
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

var (
	ErrArticleIDMissing      = BadRequest("article_id is missing")
	ErrInvalidArticleID      = BadRequest("Invalid article_id format")
	ErrInvalidCommentID      = BadRequest("Invalid comment_id format")
	ErrInvalidIncVotes       = BadRequest("Invalid inc_votes format")
	ErrCommentFieldsRequired = BadRequest("Username and body are required")
	ErrArticleNotFound       = NotFound("Article not found")
	ErrNoArticlesForTopic    = NotFound("No articles found for the specified topic")
	ErrCommentsNotFound      = NotFound("Comments not found")
	ErrCommentNotFound       = NotFound("Comment not found")
	ErrUserNotFound          = NotFound("User not found")
	ErrNoUsersFound          = NotFound("No users found")
	ErrRouteNotFound         = NotFound("Route not found")
)
