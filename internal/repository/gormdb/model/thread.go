package model

import (
	"time"

	"github.com/Guyuepp/forum-api/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;type:varchar(50)"`
	Owner string    `gorm:"type:varchar(50);not null;index"`
	Title string    `gorm:"type:text;not null"`
	Body  string    `gorm:"type:text;not null"`
	Date  time.Time `gorm:"column:date;precision:6;not null"`

	User User `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(id string, t domain.AddThread, date time.Time) *Thread {
	return &Thread{
		ID:    id,
		Owner: t.Owner,
		Title: t.Title,
		Body:  t.Body,
		Date:  date,
	}
}

func (m *Thread) ToAdded() domain.AddedThread {
	return domain.AddedThread{ID: m.ID, Title: m.Title, Owner: m.Owner}
}

// ThreadRow is a thread joined with its owner's username.
type ThreadRow struct {
	ID       string
	Owner    string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

func (r *ThreadRow) ToDomain() (domain.Thread, error) {
	return domain.NewThread(domain.ThreadPayload{
		ID:       r.ID,
		Owner:    r.Owner,
		Title:    r.Title,
		Body:     r.Body,
		Date:     r.Date,
		Username: r.Username,
	})
}
