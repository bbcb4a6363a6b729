package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/gormdb/model"
)

type threadRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var (
	_ domain.ThreadRepository = (*threadRepository)(nil)
	_ domain.ThreadIDFetcher  = (*threadRepository)(nil)
)

// NewThreadRepository will create an implementation of domain.ThreadRepository
func NewThreadRepository(db *gorm.DB, gen IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		newID: gen,
	}
}

func (m *threadRepository) AddThread(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	thread := model.NewThreadFromDomain(newID(m.newID, "thread-"), t, m.DB.NowFunc())

	if err := m.DB.WithContext(ctx).Omit(clause.Associations).Create(thread).Error; err != nil {
		return domain.AddedThread{}, referenceError(ctx, m.DB, err, nil, "", nil)
	}
	return thread.ToAdded(), nil
}

func (m *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	var row model.ThreadRow
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.owner, threads.title, threads.body, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Thread{}, domain.ErrThreadNotFound
	}
	if err != nil {
		return domain.Thread{}, err
	}

	return row.ToDomain()
}

func (m *threadRepository) VerifyThreadByID(ctx context.Context, id string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (m *threadRepository) FetchThreadIDs(ctx context.Context, cursor string, limit int) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return
}
