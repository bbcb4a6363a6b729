package comment

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
}

var _ domain.CommentUsecase = (*Service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository) *Service {
	return &Service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
	}
}

// AddComment stores a comment after making sure the thread exists.
func (s *Service) AddComment(ctx context.Context, p domain.AddCommentPayload) (domain.AddedComment, error) {
	newComment, err := domain.NewAddComment(p)
	if err != nil {
		return domain.AddedComment{}, err
	}

	if err := s.threadRepo.VerifyThreadByID(ctx, newComment.ThreadID); err != nil {
		return domain.AddedComment{}, err
	}

	return s.commentRepo.AddComment(ctx, newComment)
}

// DeleteComment soft deletes a comment owned by userID.
func (s *Service) DeleteComment(ctx context.Context, commentID, threadID, userID string) error {
	if err := s.threadRepo.VerifyThreadByID(ctx, threadID); err != nil {
		return err
	}

	owner, err := s.commentRepo.GetCommentOwner(ctx, commentID)
	if err != nil {
		return err
	}
	if owner != userID {
		return domain.ErrNotResourceOwner
	}

	return s.commentRepo.DeleteComment(ctx, commentID)
}
