package domain

import (
	"context"
	"time"
)

// AddThreadPayload is the raw input for a new thread. Owner comes from the
// authenticated user, never from the request body.
type AddThreadPayload struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
	Owner string `validate:"required"`
}

// AddThread is a validated request to create a thread.
type AddThread struct {
	Title string
	Body  string
	Owner string
}

// NewAddThread validates the payload and copies it into an AddThread.
func NewAddThread(p AddThreadPayload) (AddThread, error) {
	if err := validatePayload(p, ErrAddThreadMissingProperty); err != nil {
		return AddThread{}, err
	}
	return AddThread{Title: p.Title, Body: p.Body, Owner: p.Owner}, nil
}

// AddedThread is the minimal projection returned after a thread is stored.
type AddedThread struct {
	ID    string
	Title string
	Owner string
}

// ThreadPayload is what a persistence adapter hands over when it reads a thread.
type ThreadPayload struct {
	ID       string    `validate:"required"`
	Owner    string
	Title    string    `validate:"required"`
	Body     string    `validate:"required"`
	Date     time.Time `validate:"required"`
	Username string    `validate:"required"`
}

// Thread is the display form of a thread together with its comments.
type Thread struct {
	ID       string
	Owner    string
	Title    string
	Body     string
	Date     time.Time
	Username string
	Comments []Comment
}

func NewThread(p ThreadPayload) (Thread, error) {
	if err := validatePayload(p, ErrThreadMissingProperty); err != nil {
		return Thread{}, err
	}
	return Thread{
		ID:       p.ID,
		Owner:    p.Owner,
		Title:    p.Title,
		Body:     p.Body,
		Date:     p.Date,
		Username: p.Username,
		Comments: []Comment{},
	}, nil
}

// WithComments returns a copy of t holding the given comments in order.
func (t Thread) WithComments(comments []Comment) Thread {
	t.Comments = make([]Comment, len(comments))
	copy(t.Comments, comments)
	return t
}

// ThreadRepository defines the contract for thread persistence
type ThreadRepository interface {
	// AddThread generates an id, stores the thread and returns the created record.
	AddThread(ctx context.Context, t AddThread) (AddedThread, error)

	// GetThreadByID retrieves a thread joined with its owner's username.
	// Returns ErrThreadNotFound if the thread doesn't exist.
	GetThreadByID(ctx context.Context, id string) (Thread, error)

	// VerifyThreadByID only checks existence.
	// Returns ErrThreadNotFound if the thread doesn't exist.
	VerifyThreadByID(ctx context.Context, id string) error
}

// ThreadIDFetcher pages through stored thread ids, ordered by id.
// cursor is the last id of the previous page, or "" for the first page.
type ThreadIDFetcher interface {
	FetchThreadIDs(ctx context.Context, cursor string, limit int) ([]string, error)
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, p AddThreadPayload) (AddedThread, error)
	GetThreadDetail(ctx context.Context, threadID string) (Thread, error)
}
