package reply_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/domain/mocks"
	"github.com/Guyuepp/forum-api/internal/usecase/reply"
)

func newMocks() (*mocks.ThreadRepository, *mocks.CommentRepository, *mocks.ReplyRepository) {
	return new(mocks.ThreadRepository), new(mocks.CommentRepository), new(mocks.ReplyRepository)
}

func TestAddReply(t *testing.T) {
	payload := domain.AddReplyPayload{Content: "sebuah balasan", ThreadID: "thread-123", CommentID: "comment-123", Owner: "user-123"}

	t.Run("success checks thread then comment", func(t *testing.T) {
		threads, comments, replies := newMocks()
		want := domain.AddedReply{ID: "reply-123", Content: "sebuah balasan", Owner: "user-123"}
		mock.InOrder(
			threads.On("VerifyThreadByID", mock.Anything, "thread-123").Return(nil).Once(),
			comments.On("VerifyCommentByID", mock.Anything, "comment-123").Return(nil).Once(),
			replies.On("AddReply", mock.Anything, domain.AddReply{
				Content: "sebuah balasan", ThreadID: "thread-123", CommentID: "comment-123", Owner: "user-123",
			}).Return(want, nil).Once(),
		)

		got, err := reply.NewService(threads, comments, replies).AddReply(context.TODO(), payload)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		threads.AssertExpectations(t)
		comments.AssertExpectations(t)
		replies.AssertExpectations(t)
	})

	t.Run("thread not found", func(t *testing.T) {
		threads, comments, replies := newMocks()
		threads.On("VerifyThreadByID", mock.Anything, "thread-123").Return(domain.ErrThreadNotFound).Once()

		_, err := reply.NewService(threads, comments, replies).AddReply(context.TODO(), payload)

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		comments.AssertNotCalled(t, "VerifyCommentByID", mock.Anything, mock.Anything)
		replies.AssertNotCalled(t, "AddReply", mock.Anything, mock.Anything)
	})

	t.Run("comment not found", func(t *testing.T) {
		threads, comments, replies := newMocks()
		threads.On("VerifyThreadByID", mock.Anything, "thread-123").Return(nil).Once()
		comments.On("VerifyCommentByID", mock.Anything, "comment-123").Return(domain.ErrCommentNotFound).Once()

		_, err := reply.NewService(threads, comments, replies).AddReply(context.TODO(), payload)

		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
		replies.AssertNotCalled(t, "AddReply", mock.Anything, mock.Anything)
	})

	t.Run("missing comment id", func(t *testing.T) {
		threads, comments, replies := newMocks()
		p := payload
		p.CommentID = ""

		_, err := reply.NewService(threads, comments, replies).AddReply(context.TODO(), p)

		assert.ErrorIs(t, err, domain.ErrAddReplyMissingProperty)
		threads.AssertNotCalled(t, "VerifyThreadByID", mock.Anything, mock.Anything)
	})
}

func TestDeleteReply(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		threads, comments, replies := newMocks()
		mock.InOrder(
			threads.On("VerifyThreadByID", mock.Anything, "thread-123").Return(nil).Once(),
			comments.On("VerifyCommentByID", mock.Anything, "comment-123").Return(nil).Once(),
			replies.On("GetReplyOwner", mock.Anything, "reply-123").Return("user-123", nil).Once(),
			replies.On("DeleteReply", mock.Anything, "reply-123").Return(nil).Once(),
		)

		err := reply.NewService(threads, comments, replies).DeleteReply(context.TODO(), "comment-123", "reply-123", "thread-123", "user-123")

		require.NoError(t, err)
		replies.AssertExpectations(t)
	})

	t.Run("not owner", func(t *testing.T) {
		threads, comments, replies := newMocks()
		threads.On("VerifyThreadByID", mock.Anything, "thread-123").Return(nil).Once()
		comments.On("VerifyCommentByID", mock.Anything, "comment-123").Return(nil).Once()
		replies.On("GetReplyOwner", mock.Anything, "reply-123").Return("user-123", nil).Once()

		err := reply.NewService(threads, comments, replies).DeleteReply(context.TODO(), "comment-123", "reply-123", "thread-123", "user-456")

		assert.ErrorIs(t, err, domain.ErrNotResourceOwner)
		replies.AssertNotCalled(t, "DeleteReply", mock.Anything, mock.Anything)
	})

	t.Run("reply not found", func(t *testing.T) {
		threads, comments, replies := newMocks()
		threads.On("VerifyThreadByID", mock.Anything, "thread-123").Return(nil).Once()
		comments.On("VerifyCommentByID", mock.Anything, "comment-123").Return(nil).Once()
		replies.On("GetReplyOwner", mock.Anything, "reply-xxx").Return("", domain.ErrReplyNotFound).Once()

		err := reply.NewService(threads, comments, replies).DeleteReply(context.TODO(), "comment-123", "reply-xxx", "thread-123", "user-123")

		assert.ErrorIs(t, err, domain.ErrReplyNotFound)
		replies.AssertNotCalled(t, "DeleteReply", mock.Anything, mock.Anything)
	})

	t.Run("comment not found", func(t *testing.T) {
		threads, comments, replies := newMocks()
		threads.On("VerifyThreadByID", mock.Anything, "thread-123").Return(nil).Once()
		comments.On("VerifyCommentByID", mock.Anything, "comment-xxx").Return(domain.ErrCommentNotFound).Once()

		err := reply.NewService(threads, comments, replies).DeleteReply(context.TODO(), "comment-xxx", "reply-123", "thread-123", "user-123")

		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
		replies.AssertNotCalled(t, "GetReplyOwner", mock.Anything, mock.Anything)
	})
}
