package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	Date      time.Time `gorm:"column:date;precision:6;not null"`

	User    User    `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
	Comment Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(id string, r domain.AddReply, date time.Time) *Reply {
	return &Reply{
		ID:        id,
		Owner:     r.Owner,
		CommentID: r.CommentID,
		Content:   r.Content,
		Date:      date,
	}
}

func (m *Reply) ToAdded() domain.AddedReply {
	return domain.AddedReply{ID: m.ID, Content: m.Content, Owner: m.Owner}
}

type ReplyRow struct {
	ID        string
	Owner     string
	CommentID string
	Content   string
	IsDeleted bool
	Date      time.Time
	Username  string
}

func (r *ReplyRow) ToDomain() (domain.Reply, error) {
	return domain.NewReply(domain.ReplyPayload{
		ID:        r.ID,
		Owner:     r.Owner,
		CommentID: r.CommentID,
		Content:   r.Content,
		IsDeleted: r.IsDeleted,
		Date:      r.Date,
		Username:  r.Username,
	})
}
