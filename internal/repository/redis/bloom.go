package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	KeyThreadBloom      = "bloom:thread:ids"
	KeyThreadBloomReady = "bloom:thread:ready"
)

type redisBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	setBits(ctx, pipe, r.getOffset(id))
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisBloomRepo) Exists(ctx context.Context, id string) (bool, error) {
	offsets := r.getOffset(id)
	pipe := r.client.Pipeline()
	ready := pipe.Exists(ctx, KeyThreadBloomReady)
	bits := make([]*redis.IntCmd, len(offsets))
	for i, offset := range offsets {
		bits[i] = pipe.GetBit(ctx, KeyThreadBloom, int64(offset))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	// 预热完成前无法给出否定结果
	if ready.Val() == 0 {
		return true, nil
	}
	for _, cmd := range bits {
		if cmd.Val() == 0 {
			return false, nil
		}
	}

	return true, nil
}

func (r *redisBloomRepo) getOffset(id string) []uint64 {
	data := []byte(id)
	offsets := make([]uint64, 3) // k=3

	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	// 第三个位置由前两个推导，省一次哈希
	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}

// BulkAdd sets the bits of every id in one round trip.
func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		setBits(ctx, pipe, r.getOffset(id))
	}
	_, err := pipe.Exec(ctx)
	return err
}

func setBits(ctx context.Context, pipe redis.Pipeliner, offsets []uint64) {
	for _, offset := range offsets {
		pipe.SetBit(ctx, KeyThreadBloom, int64(offset), 1)
	}
}

func (r *redisBloomRepo) MarkReady(ctx context.Context) error {
	return r.client.Set(ctx, KeyThreadBloomReady, 1, 0).Err()
}

func (r *redisBloomRepo) MarkNotReady(ctx context.Context) error {
	return r.client.Del(ctx, KeyThreadBloomReady).Err()
}
