package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/forum-api/domain"
)

// likeRepository 协调层，点赞数走缓存，写操作后删除缓存
type likeRepository struct {
	db         domain.LikeRepository
	cache      domain.LikeCountCache
	countGroup singleflight.Group
}

var _ domain.LikeRepository = (*likeRepository)(nil)

// NewLikeRepository caches like counts of db in cache.
func NewLikeRepository(db domain.LikeRepository, cache domain.LikeCountCache) *likeRepository {
	return &likeRepository{
		db:    db,
		cache: cache,
	}
}

func (r *likeRepository) AddLike(ctx context.Context, l domain.Like) error {
	if err := r.db.AddLike(ctx, l); err != nil {
		return err
	}
	r.invalidate(ctx, l.CommentID)
	return nil
}

func (r *likeRepository) DeleteLike(ctx context.Context, l domain.Like) error {
	if err := r.db.DeleteLike(ctx, l); err != nil {
		return err
	}
	r.invalidate(ctx, l.CommentID)
	return nil
}

func (r *likeRepository) VerifyLike(ctx context.Context, l domain.Like) (bool, error) {
	return r.db.VerifyLike(ctx, l)
}

func (r *likeRepository) GetLikeCount(ctx context.Context, commentID string) (int64, error) {
	count, err := r.cache.GetLikeCount(ctx, commentID)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get like count of %s from cache: %v", commentID, err)
	}

	// 缓存未命中，使用singleflight避免并发回源
	// 回源不跟随某个调用方的取消，每个调用方各自等待
	fillCtx := context.WithoutCancel(ctx)
	ch := r.countGroup.DoChan(commentID, func() (any, error) {
		count, err := r.db.GetLikeCount(fillCtx, commentID)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetLikeCount(fillCtx, commentID, count); err != nil {
			logrus.Warnf("failed to set like count of %s: %v", commentID, err)
		}
		return count, nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(int64), nil
	}
}

// invalidate 缓存过期时间兜底删除失败的情况
func (r *likeRepository) invalidate(ctx context.Context, commentID string) {
	if err := r.cache.DeleteLikeCount(ctx, commentID); err != nil {
		logrus.Warnf("failed to invalidate like count of %s: %v", commentID, err)
	}
}
