package repository_test

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
	"github.com/Guyuepp/forum-api/internal/repository"
)

func TestLikeWritesInvalidateCount(t *testing.T) {
	l := domain.Like{CommentID: "comment-123", Owner: "user-123"}

	t.Run("add", func(t *testing.T) {
		db, cache := new(mocks.LikeRepository), new(mocks.LikeCountCache)
		mock.InOrder(
			db.On("AddLike", mock.Anything, l).Return(nil).Once(),
			cache.On("DeleteLikeCount", mock.Anything, "comment-123").Return(nil).Once(),
		)

		require.NoError(t, repository.NewLikeRepository(db, cache).AddLike(context.TODO(), l))
		cache.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		db, cache := new(mocks.LikeRepository), new(mocks.LikeCountCache)
		db.On("DeleteLike", mock.Anything, l).Return(nil).Once()
		cache.On("DeleteLikeCount", mock.Anything, "comment-123").Return(errors.New("redis down")).Once()

		require.NoError(t, repository.NewLikeRepository(db, cache).DeleteLike(context.TODO(), l))
		cache.AssertExpectations(t)
	})

	t.Run("failed delete keeps the cache", func(t *testing.T) {
		db, cache := new(mocks.LikeRepository), new(mocks.LikeCountCache)
		db.On("DeleteLike", mock.Anything, l).Return(domain.ErrLikeNotFound).Once()

		err := repository.NewLikeRepository(db, cache).DeleteLike(context.TODO(), l)

		assert.ErrorIs(t, err, domain.ErrLikeNotFound)
		cache.AssertNotCalled(t, "DeleteLikeCount", mock.Anything, mock.Anything)
	})
}

func TestLikeGetLikeCount(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		db, cache := new(mocks.LikeRepository), new(mocks.LikeCountCache)
		cache.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(4), nil).Once()

		count, err := repository.NewLikeRepository(db, cache).GetLikeCount(context.TODO(), "comment-123")

		require.NoError(t, err)
		assert.EqualValues(t, 4, count)
		db.AssertNotCalled(t, "GetLikeCount", mock.Anything, mock.Anything)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		db, cache := new(mocks.LikeRepository), new(mocks.LikeCountCache)
		cache.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(0), domain.ErrCacheMiss).Once()
		db.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(2), nil).Once()
		cache.On("SetLikeCount", mock.Anything, "comment-123", int64(2)).Return(nil).Once()

		count, err := repository.NewLikeRepository(db, cache).GetLikeCount(context.TODO(), "comment-123")

		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
		cache.AssertExpectations(t)
	})

	t.Run("cache error falls back to db", func(t *testing.T) {
		db, cache := new(mocks.LikeRepository), new(mocks.LikeCountCache)
		cache.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(0), errors.New("redis down")).Once()
		db.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(1), nil).Once()
		cache.On("SetLikeCount", mock.Anything, "comment-123", int64(1)).Return(errors.New("redis down")).Once()

		count, err := repository.NewLikeRepository(db, cache).GetLikeCount(context.TODO(), "comment-123")

		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("db error", func(t *testing.T) {
		db, cache := new(mocks.LikeRepository), new(mocks.LikeCountCache)
		boom := errors.New("db down")
		cache.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(0), domain.ErrCacheMiss).Once()
		db.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(0), boom).Once()

		_, err := repository.NewLikeRepository(db, cache).GetLikeCount(context.TODO(), "comment-123")

		assert.ErrorIs(t, err, boom)
		cache.AssertNotCalled(t, "SetLikeCount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancelled caller does not cancel the fill", func(t *testing.T) {
		db, cache := new(mocks.LikeRepository), new(mocks.LikeCountCache)
		started, release := make(chan struct{}), make(chan struct{})
		fillErr, stored := make(chan error, 1), make(chan struct{})
		cache.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(0), domain.ErrCacheMiss).Once()
		db.On("GetLikeCount", mock.Anything, "comment-123").Return(int64(3), nil).Once().
			Run(func(args mock.Arguments) {
				close(started)
				<-release
				fillErr <- args.Get(0).(context.Context).Err()
			})
		cache.On("SetLikeCount", mock.Anything, "comment-123", int64(3)).Return(nil).Once().
			Run(func(mock.Arguments) { close(stored) })

		ctx, cancel := context.WithCancel(context.TODO())
		done := make(chan error, 1)
		go func() {
			_, err := repository.NewLikeRepository(db, cache).GetLikeCount(ctx, "comment-123")
			done <- err
		}()

		<-started
		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("caller kept waiting after its context was cancelled")
		}

		close(release)
		assert.NoError(t, <-fillErr)
		select {
		case <-stored:
		case <-time.After(time.Second):
			t.Fatal("count was not stored")
		}
	})
}
