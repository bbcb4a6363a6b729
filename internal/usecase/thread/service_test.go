package thread_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/domain/mocks"
	"github.com/Guyuepp/forum-api/internal/usecase/thread"
)

type repos struct {
	threads  *mocks.ThreadRepository
	comments *mocks.CommentRepository
	replies  *mocks.ReplyRepository
	likes    *mocks.LikeRepository
}

func newService() (*thread.Service, repos) {
	r := repos{
		threads:  new(mocks.ThreadRepository),
		comments: new(mocks.CommentRepository),
		replies:  new(mocks.ReplyRepository),
		likes:    new(mocks.LikeRepository),
	}
	return thread.NewService(r.threads, r.comments, r.replies, r.likes), r
}

func TestAddThread(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newService()
		want := domain.AddedThread{ID: "thread-123", Title: "sebuah thread", Owner: "user-123"}
		r.threads.On("AddThread", mock.Anything, domain.AddThread{Title: "sebuah thread", Body: "sebuah body", Owner: "user-123"}).
			Return(want, nil).Once()

		got, err := svc.AddThread(context.TODO(), domain.AddThreadPayload{Title: "sebuah thread", Body: "sebuah body", Owner: "user-123"})

		require.NoError(t, err)
		assert.Equal(t, want, got)
		r.threads.AssertExpectations(t)
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		svc, r := newService()

		_, err := svc.AddThread(context.TODO(), domain.AddThreadPayload{Title: "sebuah thread", Owner: "user-123"})

		assert.ErrorIs(t, err, domain.ErrAddThreadMissingProperty)
		r.threads.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything)
	})
}

func TestGetThreadDetail(t *testing.T) {
	date := time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC)
	th := domain.Thread{ID: "thread-123", Title: "sebuah thread", Body: "sebuah body", Date: date, Username: "dicoding", Comments: []domain.Comment{}}
	c1 := domain.Comment{ID: "comment-1", Content: "sebuah comment", Date: date, Username: "johndoe", Replies: []domain.Reply{}}
	c2 := domain.Comment{ID: "comment-2", Content: domain.DeletedCommentContent, IsDeleted: true, Date: date.Add(time.Minute), Username: "dicoding", Replies: []domain.Reply{}}
	r1 := domain.Reply{ID: "reply-1", CommentID: "comment-1", Content: "sebuah balasan", Date: date.Add(2 * time.Minute), Username: "dicoding"}
	r2 := domain.Reply{ID: "reply-2", CommentID: "comment-1", Content: domain.DeletedReplyContent, IsDeleted: true, Date: date.Add(3 * time.Minute), Username: "johndoe"}

	t.Run("success keeps comment and reply order", func(t *testing.T) {
		svc, r := newService()
		r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(th, nil).Once()
		r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.Comment{c1, c2}, nil).Once()
		// the first comment finishes last
		r.replies.On("GetRepliesByCommentID", mock.Anything, "comment-1").After(30*time.Millisecond).Return([]domain.Reply{r1, r2}, nil).Once()
		r.replies.On("GetRepliesByCommentID", mock.Anything, "comment-2").Return([]domain.Reply{}, nil).Once()
		r.likes.On("GetLikeCount", mock.Anything, "comment-1").After(20*time.Millisecond).Return(int64(2), nil).Once()
		r.likes.On("GetLikeCount", mock.Anything, "comment-2").Return(int64(0), nil).Once()

		got, err := svc.GetThreadDetail(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, "thread-123", got.ID)
		require.Len(t, got.Comments, 2)
		assert.Equal(t, "comment-1", got.Comments[0].ID)
		assert.Equal(t, "comment-2", got.Comments[1].ID)
		assert.EqualValues(t, 2, got.Comments[0].LikeCount)
		assert.EqualValues(t, 0, got.Comments[1].LikeCount)
		require.Len(t, got.Comments[0].Replies, 2)
		assert.Equal(t, "reply-1", got.Comments[0].Replies[0].ID)
		assert.Equal(t, domain.DeletedReplyContent, got.Comments[0].Replies[1].Content)
		assert.NotNil(t, got.Comments[1].Replies)
		assert.Empty(t, got.Comments[1].Replies)
		assert.Equal(t, domain.DeletedCommentContent, got.Comments[1].Content)
		assert.Empty(t, th.Comments, "thread returned by the repository must not be mutated")

		r.threads.AssertExpectations(t)
		r.comments.AssertExpectations(t)
		r.replies.AssertExpectations(t)
		r.likes.AssertExpectations(t)
	})

	t.Run("thread without comments", func(t *testing.T) {
		svc, r := newService()
		r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(th, nil).Once()
		r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.Comment{}, nil).Once()

		got, err := svc.GetThreadDetail(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
		r.replies.AssertNotCalled(t, "GetRepliesByCommentID", mock.Anything, mock.Anything)
		r.likes.AssertNotCalled(t, "GetLikeCount", mock.Anything, mock.Anything)
	})

	t.Run("thread not found", func(t *testing.T) {
		svc, r := newService()
		r.threads.On("GetThreadByID", mock.Anything, "thread-xxx").Return(domain.Thread{}, domain.ErrThreadNotFound).Once()

		_, err := svc.GetThreadDetail(context.TODO(), "thread-xxx")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		r.comments.AssertNotCalled(t, "GetCommentsByThreadID", mock.Anything, mock.Anything)
	})

	t.Run("child fetch error is returned", func(t *testing.T) {
		svc, r := newService()
		boom := errors.New("connection reset")
		r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(th, nil).Once()
		r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.Comment{c1}, nil).Once()
		r.replies.On("GetRepliesByCommentID", mock.Anything, "comment-1").Return(nil, boom).Once()
		r.likes.On("GetLikeCount", mock.Anything, "comment-1").Return(int64(0), nil).Maybe()

		_, err := svc.GetThreadDetail(context.TODO(), "thread-123")

		assert.ErrorIs(t, err, boom)
	})
}
