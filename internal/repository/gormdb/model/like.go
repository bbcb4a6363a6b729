package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

// Like has the composite primary key (owner, comment_id).
type Like struct {
	Owner     string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"primaryKey;column:comment_id;type:varchar(50);index"`
	Date      time.Time `gorm:"column:date;precision:6;not null"`

	User    User    `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
	Comment Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l domain.Like, date time.Time) *Like {
	return &Like{
		Owner:     l.Owner,
		CommentID: l.CommentID,
		Date:      date,
	}
}
