package domain

import (
	"context"
	"time"
)

// DeletedCommentContent replaces the content of a soft-deleted comment.
const DeletedCommentContent = "**komentar telah dihapus**"

type AddCommentPayload struct {
	Content  string `validate:"required"`
	ThreadID string `validate:"required"`
	Owner    string `validate:"required"`
}

// AddComment is a validated request to comment on a thread.
type AddComment struct {
	Content  string
	ThreadID string
	Owner    string
}

func NewAddComment(p AddCommentPayload) (AddComment, error) {
	if err := validatePayload(p, ErrAddCommentMissingProperty); err != nil {
		return AddComment{}, err
	}
	return AddComment{Content: p.Content, ThreadID: p.ThreadID, Owner: p.Owner}, nil
}

type AddedComment struct {
	ID      string
	Content string
	Owner   string
}

// CommentPayload is the stored form of a comment as read by an adapter.
// IsDeleted is the persisted soft-delete status; false is a valid value.
type CommentPayload struct {
	ID        string `validate:"required"`
	Owner     string
	ThreadID  string
	Content   string    `validate:"required"`
	IsDeleted bool
	Date      time.Time `validate:"required"`
	Username  string    `validate:"required"`
}

// Comment is the display form of a comment. Content is already masked when
// the comment was deleted.
type Comment struct {
	ID        string
	Owner     string
	ThreadID  string
	Content   string
	IsDeleted bool
	Date      time.Time
	Username  string
	Replies   []Reply
	LikeCount int64
}

func NewComment(p CommentPayload) (Comment, error) {
	if err := validatePayload(p, ErrCommentMissingProperty); err != nil {
		return Comment{}, err
	}

	content := p.Content
	if p.IsDeleted {
		content = DeletedCommentContent
	}

	return Comment{
		ID:        p.ID,
		Owner:     p.Owner,
		ThreadID:  p.ThreadID,
		Content:   content,
		IsDeleted: p.IsDeleted,
		Date:      p.Date,
		Username:  p.Username,
		Replies:   []Reply{},
	}, nil
}

// WithDetail returns a copy of c carrying its replies and like count.
func (c Comment) WithDetail(replies []Reply, likeCount int64) Comment {
	c.Replies = make([]Reply, len(replies))
	copy(c.Replies, replies)
	c.LikeCount = likeCount
	return c
}

// CommentRepository defines the contract for comment persistence
type CommentRepository interface {
	// AddComment stores a comment on an existing thread.
	AddComment(ctx context.Context, c AddComment) (AddedComment, error)

	// DeleteComment flips is_deleted. Deleting an already deleted comment succeeds.
	// Returns ErrCommentNotFound if no row has the id.
	DeleteComment(ctx context.Context, id string) error

	// GetCommentsByThreadID returns the comments of a thread, oldest first.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]Comment, error)

	// GetCommentOwner returns the owner id.
	// Returns ErrCommentNotFound if the comment doesn't exist.
	GetCommentOwner(ctx context.Context, id string) (string, error)

	// VerifyCommentByID returns ErrCommentNotFound if the comment doesn't exist.
	VerifyCommentByID(ctx context.Context, id string) error
}

type CommentUsecase interface {
	AddComment(ctx context.Context, p AddCommentPayload) (AddedComment, error)
	DeleteComment(ctx context.Context, commentID, threadID, userID string) error
}
