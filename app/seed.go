package main

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
)

const (
	devUsername = "dicoding"
	devPassword = "secret"
	devTokenTTL = 24 * time.Hour
)

// seedDevelopmentUser makes sure a known user exists and logs a token for it,
// so the write endpoints can be tried without an auth service.
func seedDevelopmentUser(ctx context.Context, users domain.UserRepository, secret string) error {
	u, err := users.GetByUsername(ctx, devUsername)
	if errors.Is(err, domain.ErrNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		u = domain.User{Username: devUsername, Password: string(hash), Fullname: "Dicoding Indonesia"}
		err = users.Insert(ctx, &u)
	}
	if err != nil {
		return err
	}

	token, err := middleware.NewAccessToken(secret, u.ID, u.Username, devTokenTTL)
	if err != nil {
		return err
	}
	logrus.Infof("development user %s (%s), access token: %s", u.Username, u.ID, token)
	return nil
}
