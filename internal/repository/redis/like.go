package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
)

const KeyCommentLikes = "comment:likes:%s"

type likeCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.LikeCountCache = (*likeCountCache)(nil)

func NewLikeCountCache(client *redis.Client, ttl time.Duration) *likeCountCache {
	return &likeCountCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *likeCountCache) GetLikeCount(ctx context.Context, commentID string) (int64, error) {
	count, err := c.client.Get(ctx, fmt.Sprintf(KeyCommentLikes, commentID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	}
	return count, err
}

func (c *likeCountCache) SetLikeCount(ctx context.Context, commentID string, count int64) error {
	return c.client.Set(ctx, fmt.Sprintf(KeyCommentLikes, commentID), count, c.ttl).Err()
}

func (c *likeCountCache) DeleteLikeCount(ctx context.Context, commentID string) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyCommentLikes, commentID)).Err()
}
