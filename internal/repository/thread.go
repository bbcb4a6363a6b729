package repository

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	rewarmBatch   = 1000
	rewarmTimeout = 5 * time.Minute
)

// threadRepository 协调层，用布隆过滤器挡住不存在的 thread id
type threadRepository struct {
	db    domain.ThreadRepository
	bloom domain.BloomRepository

	// addFailures 每次 Add 失败加一，重新预热据此判断期间是否又有遗漏
	addFailures atomic.Uint64
	rewarming   atomic.Bool
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository wraps db with the bloom filter. When db can page thread
// ids, a failed filter write triggers a background warm-up.
func NewThreadRepository(db domain.ThreadRepository, bloom domain.BloomRepository) *threadRepository {
	return &threadRepository{
		db:    db,
		bloom: bloom,
	}
}

func (r *threadRepository) AddThread(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	added, err := r.db.AddThread(ctx, t)
	if err != nil {
		return domain.AddedThread{}, err
	}

	if err := r.bloom.Add(ctx, added.ID); err != nil {
		logrus.Errorf("failed to add thread %s to bloom filter: %v", added.ID, err)
		r.addFailures.Add(1)
		// 过滤器缺了这个 id，撤销就绪标记，否则会把它判成不存在
		if err := r.bloom.MarkNotReady(ctx); err != nil {
			logrus.Errorf("failed to mark bloom filter not ready: %v", err)
		}
		r.rewarm(ctx)
	}
	return added, nil
}

func (r *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	if !r.mayExist(ctx, id) {
		return domain.Thread{}, domain.ErrThreadNotFound
	}
	return r.db.GetThreadByID(ctx, id)
}

func (r *threadRepository) VerifyThreadByID(ctx context.Context, id string) error {
	if !r.mayExist(ctx, id) {
		return domain.ErrThreadNotFound
	}
	return r.db.VerifyThreadByID(ctx, id)
}

// mayExist 过滤器出错时放行到数据库
func (r *threadRepository) mayExist(ctx context.Context, id string) bool {
	ok, err := r.bloom.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter check failed for thread %s: %v", id, err)
		return true
	}
	return ok
}

// rewarm reloads every thread id in the background. Only one reload runs at a
// time; it repeats while new Add failures arrive during a pass.
func (r *threadRepository) rewarm(ctx context.Context) {
	fetcher, ok := r.db.(domain.ThreadIDFetcher)
	if !ok || !r.rewarming.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer r.rewarming.Store(false)
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rewarmTimeout)
		defer cancel()

		for {
			seen := r.addFailures.Load()
			total, err := loadThreadIDs(ctx, fetcher, r.bloom, rewarmBatch)
			if err != nil {
				logrus.Errorf("failed to rewarm bloom filter: %v", err)
				return
			}
			if r.addFailures.Load() != seen {
				continue
			}
			if err := r.bloom.MarkReady(ctx); err != nil {
				logrus.Errorf("failed to mark bloom filter ready: %v", err)
				return
			}
			if r.addFailures.Load() == seen {
				logrus.Infof("bloom filter rewarmed with %d thread ids", total)
				return
			}
			// 标记就绪的同时又有写入失败
			if err := r.bloom.MarkNotReady(ctx); err != nil {
				logrus.Errorf("failed to mark bloom filter not ready: %v", err)
				return
			}
		}
	}()
}

// WarmUpThreadBloom loads every stored thread id into the filter, batch ids at
// a time, and then marks the filter ready.
func WarmUpThreadBloom(ctx context.Context, fetcher domain.ThreadIDFetcher, bloom domain.BloomRepository, batch int) error {
	total, err := loadThreadIDs(ctx, fetcher, bloom, batch)
	if err != nil {
		return err
	}
	if err := bloom.MarkReady(ctx); err != nil {
		return err
	}
	logrus.Infof("bloom filter warmed up with %d thread ids", total)
	return nil
}

func loadThreadIDs(ctx context.Context, fetcher domain.ThreadIDFetcher, bloom domain.BloomRepository, batch int) (int, error) {
	cursor := ""
	total := 0
	for {
		ids, err := fetcher.FetchThreadIDs(ctx, cursor, batch)
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}
		if err := bloom.BulkAdd(ctx, ids); err != nil {
			return total, err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < batch {
			return total, nil
		}
	}
}
