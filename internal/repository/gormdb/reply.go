package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/gormdb/model"
)

type replyRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, gen IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: gen,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, in domain.AddReply) (domain.AddedReply, error) {
	reply := model.NewReplyFromDomain(newID(r.newID, "reply-"), in, r.DB.NowFunc())

	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(reply).Error; err != nil {
		return domain.AddedReply{}, referenceError(ctx, r.DB, err, &model.Comment{}, in.CommentID, domain.ErrCommentNotFound)
	}
	return reply.ToAdded(), nil
}

func (r *replyRepository) DeleteReply(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ?", id).Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReplyNotFound
	}
	return nil
}

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.Reply, error) {
	var rows []model.ReplyRow
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.owner, replies.comment_id, replies.content, replies.is_deleted, replies.date, users.username").
		Joins("JOIN users ON users.id = replies.owner").
		Where("replies.comment_id = ?", commentID).
		Order("replies.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(rows))
	for i := range rows {
		if res[i], err = rows[i].ToDomain(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *replyRepository) GetReplyOwner(ctx context.Context, id string) (string, error) {
	var reply model.Reply
	err := r.DB.WithContext(ctx).Select("owner").Where("id = ?", id).Take(&reply).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrReplyNotFound
	}
	if err != nil {
		return "", err
	}
	return reply.Owner, nil
}
