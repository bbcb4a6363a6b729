package gormdb

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/config"
	"github.com/Guyuepp/forum-api/internal/repository/gormdb/model"
)

// IDGenerator returns the random part of a new id; repositories add the prefix.
type IDGenerator func() string

// DefaultIDGenerator is used when a repository is built with a nil generator.
var DefaultIDGenerator IDGenerator = uuid.NewString

// NewConfig is the gorm configuration shared by every connection.
func NewConfig() *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// Dialector picks the gorm driver for cfg.Driver.
func Dialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		c := mysqldriver.NewConfig()
		c.User = cfg.User
		c.Passwd = cfg.Pass
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		c.DBName = cfg.Name
		c.ParseTime = true
		c.Loc = time.UTC
		// soft delete of an already deleted row must still count as a match
		c.ClientFoundRows = true
		return mysql.Open(c.FormatDSN()), nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Pass, cfg.Name, cfg.Port,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects with retries and pings the database before returning.
func Open(ctx context.Context, cfg config.Database) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	maxRetry := max(cfg.MaxRetry, 1)
	var db *gorm.DB
	for i := range maxRetry {
		db, err = gorm.Open(dialector, NewConfig())
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				return nil, dbErr
			}
			if err = sqlDB.PingContext(ctx); err == nil {
				return db, nil
			}
			_ = sqlDB.Close()
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, maxRetry, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", maxRetry, err)
}

// Migrate creates or updates the forum tables, parents first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Thread{},
		&model.Comment{},
		&model.Reply{},
		&model.Like{},
	)
}

func newID(gen IDGenerator, prefix string) string {
	if gen == nil {
		gen = DefaultIDGenerator
	}
	return prefix + gen()
}

// referenceError maps a foreign key violation from an insert. When parent is
// given and has no row with parentID the result is parentMissing; otherwise the
// owner is unknown, which is bad input.
func referenceError(ctx context.Context, db *gorm.DB, err error, parent any, parentID string, parentMissing error) error {
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		return err
	}
	if parent != nil {
		var count int64
		if cerr := db.WithContext(ctx).Model(parent).Where("id = ?", parentID).Count(&count).Error; cerr != nil {
			return cerr
		}
		if count == 0 {
			return parentMissing
		}
	}
	return domain.ErrBadParamInput
}
