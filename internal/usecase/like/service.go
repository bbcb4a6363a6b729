package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.LikeRepository
}

var _ domain.LikeUsecase = (*Service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, likeRepo domain.LikeRepository) *Service {
	return &Service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

// ToggleLike flips the like of userID on the comment. Two concurrent toggles
// of the same user may both add or both remove; either way they settle on one
// state without an error.
func (s *Service) ToggleLike(ctx context.Context, commentID, threadID, userID string) (bool, error) {
	if err := s.threadRepo.VerifyThreadByID(ctx, threadID); err != nil {
		return false, err
	}
	if err := s.commentRepo.VerifyCommentByID(ctx, commentID); err != nil {
		return false, err
	}

	like := domain.Like{CommentID: commentID, Owner: userID}
	liked, err := s.likeRepo.VerifyLike(ctx, like)
	if err != nil {
		return false, err
	}

	if liked {
		// 并发的另一次切换已经取消了点赞
		if err := s.likeRepo.DeleteLike(ctx, like); err != nil && !errors.Is(err, domain.ErrLikeNotFound) {
			return false, err
		}
		logrus.Debugf("user %s unliked comment %s", userID, commentID)
		return false, nil
	}

	if err := s.likeRepo.AddLike(ctx, like); err != nil {
		return false, err
	}
	logrus.Debugf("user %s liked comment %s", userID, commentID)
	return true, nil
}
