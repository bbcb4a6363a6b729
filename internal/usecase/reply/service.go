package reply

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ReplyUsecase = (*Service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, replyRepo domain.ReplyRepository) *Service {
	return &Service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
	}
}

// AddReply checks the thread, then the comment, then stores the reply.
func (s *Service) AddReply(ctx context.Context, p domain.AddReplyPayload) (domain.AddedReply, error) {
	newReply, err := domain.NewAddReply(p)
	if err != nil {
		return domain.AddedReply{}, err
	}

	if err := s.threadRepo.VerifyThreadByID(ctx, newReply.ThreadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.VerifyCommentByID(ctx, newReply.CommentID); err != nil {
		return domain.AddedReply{}, err
	}

	return s.replyRepo.AddReply(ctx, newReply)
}

func (s *Service) DeleteReply(ctx context.Context, commentID, replyID, threadID, userID string) error {
	if err := s.threadRepo.VerifyThreadByID(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentByID(ctx, commentID); err != nil {
		return err
	}

	owner, err := s.replyRepo.GetReplyOwner(ctx, replyID)
	if err != nil {
		return err
	}
	if owner != userID {
		return domain.ErrNotResourceOwner
	}

	return s.replyRepo.DeleteReply(ctx, replyID)
}
