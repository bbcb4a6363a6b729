package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	Date      time.Time `gorm:"column:date;precision:6;not null"`

	User   User   `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
	Thread Thread `gorm:"foreignKey:ThreadID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(id string, c domain.AddComment, date time.Time) *Comment {
	return &Comment{
		ID:       id,
		Owner:    c.Owner,
		ThreadID: c.ThreadID,
		Content:  c.Content,
		Date:     date,
	}
}

func (m *Comment) ToAdded() domain.AddedComment {
	return domain.AddedComment{ID: m.ID, Content: m.Content, Owner: m.Owner}
}

// CommentRow is a comment joined with its owner's username.
type CommentRow struct {
	ID        string
	Owner     string
	ThreadID  string
	Content   string
	IsDeleted bool
	Date      time.Time
	Username  string
}

// ToDomain hands the stored deletion flag to the entity, which masks the content.
func (r *CommentRow) ToDomain() (domain.Comment, error) {
	return domain.NewComment(domain.CommentPayload{
		ID:        r.ID,
		Owner:     r.Owner,
		ThreadID:  r.ThreadID,
		Content:   r.Content,
		IsDeleted: r.IsDeleted,
		Date:      r.Date,
		Username:  r.Username,
	})
}
