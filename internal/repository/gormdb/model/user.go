package model

import "github.com/Guyuepp/forum-api/domain"

type User struct {
	ID       string `gorm:"primaryKey;type:varchar(50)"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Password string `gorm:"type:text;not null"`
	Fullname string `gorm:"type:text;not null"`
}

func (User) TableName() string {
	return "users"
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		Fullname: u.Fullname,
	}
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
		Fullname: m.Fullname,
	}
}
