package domain

import (
	"context"
	"time"
)

// Like is representing a like record. A user likes a comment at most once.
type Like struct {
	CommentID string
	Owner     string
	Date      time.Time
}

// LikeRepository defines the contract for like persistence
type LikeRepository interface {
	// AddLike stores the like. Adding an existing like is a no-op.
	AddLike(ctx context.Context, l Like) error

	// DeleteLike removes the like.
	// Returns ErrLikeNotFound if the user has not liked the comment.
	DeleteLike(ctx context.Context, l Like) error

	// VerifyLike reports whether the like exists. Absence is not an error.
	VerifyLike(ctx context.Context, l Like) (bool, error)

	// GetLikeCount counts the likes of a comment, 0 if none.
	GetLikeCount(ctx context.Context, commentID string) (int64, error)
}

// LikeCountCache stores like counts per comment.
type LikeCountCache interface {
	// GetLikeCount returns ErrCacheMiss when nothing is cached for the comment.
	GetLikeCount(ctx context.Context, commentID string) (int64, error)
	SetLikeCount(ctx context.Context, commentID string, count int64) error
	DeleteLikeCount(ctx context.Context, commentID string) error
}

type LikeUsecase interface {
	// ToggleLike likes the comment if the user has not liked it yet and unlikes it otherwise.
	// It reports whether the comment is liked afterwards.
	ToggleLike(ctx context.Context, commentID, threadID, userID string) (bool, error)
}
