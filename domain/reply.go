package domain

import (
	"context"
	"time"
)

const DeletedReplyContent = "**balasan telah dihapus**"

type AddReplyPayload struct {
	Content   string `validate:"required"`
	ThreadID  string `validate:"required"`
	CommentID string `validate:"required"`
	Owner     string `validate:"required"`
}

type AddReply struct {
	Content   string
	ThreadID  string
	CommentID string
	Owner     string
}

func NewAddReply(p AddReplyPayload) (AddReply, error) {
	if err := validatePayload(p, ErrAddReplyMissingProperty); err != nil {
		return AddReply{}, err
	}
	return AddReply{
		Content:   p.Content,
		ThreadID:  p.ThreadID,
		CommentID: p.CommentID,
		Owner:     p.Owner,
	}, nil
}

type AddedReply struct {
	ID      string
	Content string
	Owner   string
}

type ReplyPayload struct {
	ID        string `validate:"required"`
	Owner     string
	CommentID string
	Content   string    `validate:"required"`
	IsDeleted bool
	Date      time.Time `validate:"required"`
	Username  string    `validate:"required"`
}

type Reply struct {
	ID        string
	Owner     string
	CommentID string
	Content   string
	IsDeleted bool
	Date      time.Time
	Username  string
}

func NewReply(p ReplyPayload) (Reply, error) {
	if err := validatePayload(p, ErrReplyMissingProperty); err != nil {
		return Reply{}, err
	}

	content := p.Content
	if p.IsDeleted {
		content = DeletedReplyContent
	}

	return Reply{
		ID:        p.ID,
		Owner:     p.Owner,
		CommentID: p.CommentID,
		Content:   content,
		IsDeleted: p.IsDeleted,
		Date:      p.Date,
		Username:  p.Username,
	}, nil
}

// ReplyRepository defines the contract for reply persistence
type ReplyRepository interface {
	// AddReply stores a reply on an existing comment.
	AddReply(ctx context.Context, r AddReply) (AddedReply, error)

	// DeleteReply flips is_deleted.
	// Returns ErrReplyNotFound if no row has the id.
	DeleteReply(ctx context.Context, id string) error

	// GetRepliesByCommentID returns the replies of a comment, oldest first.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]Reply, error)

	// GetReplyOwner returns ErrReplyNotFound if the reply doesn't exist.
	GetReplyOwner(ctx context.Context, id string) (string, error)
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, p AddReplyPayload) (AddedReply, error)
	DeleteReply(ctx context.Context, commentID, replyID, threadID, userID string) error
}
