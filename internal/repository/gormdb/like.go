package gormdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/gormdb/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{DB: db}
}

// AddLike ignores a duplicate (owner, comment_id), so racing toggles end with one row.
func (l *likeRepository) AddLike(ctx context.Context, like domain.Like) error {
	err := l.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(model.NewLikeFromDomain(like, l.DB.NowFunc())).Error
	if err != nil {
		return referenceError(ctx, l.DB, err, &model.Comment{}, like.CommentID, domain.ErrCommentNotFound)
	}
	return nil
}

func (l *likeRepository) DeleteLike(ctx context.Context, like domain.Like) error {
	result := l.DB.WithContext(ctx).
		Where("owner = ? AND comment_id = ?", like.Owner, like.CommentID).
		Delete(&model.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}

func (l *likeRepository) VerifyLike(ctx context.Context, like domain.Like) (bool, error) {
	var count int64
	err := l.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("owner = ? AND comment_id = ?", like.Owner, like.CommentID).
		Count(&count).Error
	return count > 0, err
}

func (l *likeRepository) GetLikeCount(ctx context.Context, commentID string) (count int64, err error) {
	err = l.DB.WithContext(ctx).Model(&model.Like{}).Where("comment_id = ?", commentID).Count(&count).Error
	return
}
