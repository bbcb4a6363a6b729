package thread

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/forum-api/domain"
)

// maxDetailFanOut bounds the concurrent reply/like fetches of one GetThreadDetail call.
const maxDetailFanOut = 16

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.LikeRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, l domain.LikeRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
	}
}

func (s *Service) AddThread(ctx context.Context, p domain.AddThreadPayload) (domain.AddedThread, error) {
	newThread, err := domain.NewAddThread(p)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threadRepo.AddThread(ctx, newThread)
}

// GetThreadDetail assembles a thread with its comments, and every comment with
// its replies and like count.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.Thread, error) {
	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.Thread{}, err
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.Thread{}, err
	}

	comments, err = s.fillCommentDetails(ctx, comments)
	if err != nil {
		return domain.Thread{}, err
	}

	return thread.WithComments(comments), nil
}

/*
* Replies and like counts of different comments do not depend on each other,
* so they are fetched with an errgroup. Every goroutine writes only its own
* slot of the result slices, which keeps the repository's comment order.
* The first failure cancels ctx and is returned by Wait.
 */
func (s *Service) fillCommentDetails(ctx context.Context, comments []domain.Comment) ([]domain.Comment, error) {
	if len(comments) == 0 {
		return []domain.Comment{}, nil
	}

	replies := make([][]domain.Reply, len(comments))
	likeCounts := make([]int64, len(comments))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDetailFanOut)
	for i, comment := range comments {
		g.Go(func() error {
			res, err := s.replyRepo.GetRepliesByCommentID(ctx, comment.ID)
			if err != nil {
				return err
			}
			replies[i] = res
			return nil
		})
		g.Go(func() error {
			count, err := s.likeRepo.GetLikeCount(ctx, comment.ID)
			if err != nil {
				return err
			}
			likeCounts[i] = count
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i, comment := range comments {
		res[i] = comment.WithDetail(replies[i], likeCounts[i])
	}
	return res, nil
}
