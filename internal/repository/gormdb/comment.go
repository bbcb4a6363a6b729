package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/gormdb/model"
)

type commentRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, gen IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: gen,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, in domain.AddComment) (domain.AddedComment, error) {
	comment := model.NewCommentFromDomain(newID(c.newID, "comment-"), in, c.DB.NowFunc())

	if err := c.DB.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return domain.AddedComment{}, referenceError(ctx, c.DB, err, &model.Thread{}, in.ThreadID, domain.ErrThreadNotFound)
	}
	return comment.ToAdded(), nil
}

func (c *commentRepository) DeleteComment(ctx context.Context, id string) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var rows []model.CommentRow
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.owner, comments.thread_id, comments.content, comments.is_deleted, comments.date, users.username").
		Joins("JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i := range rows {
		if res[i], err = rows[i].ToDomain(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (c *commentRepository) GetCommentOwner(ctx context.Context, id string) (string, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).Select("owner").Where("id = ?", id).Take(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrCommentNotFound
	}
	if err != nil {
		return "", err
	}
	return comment.Owner, nil
}

func (c *commentRepository) VerifyCommentByID(ctx context.Context, id string) error {
	var count int64
	if err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
