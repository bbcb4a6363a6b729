package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/config"
	"github.com/Guyuepp/forum-api/internal/logger"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/gormdb"
	"github.com/Guyuepp/forum-api/internal/repository/memory"
	myRedisCache "github.com/Guyuepp/forum-api/internal/repository/redis"
	"github.com/Guyuepp/forum-api/internal/rest"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/usecase/comment"
	"github.com/Guyuepp/forum-api/internal/usecase/like"
	"github.com/Guyuepp/forum-api/internal/usecase/reply"
	"github.com/Guyuepp/forum-api/internal/usecase/thread"
)

const (
	bloomWarmUpBatch = 1000
	shutdownTimeout  = 5 * time.Second
)

// repositories is the set of ports one storage backend provides.
type repositories struct {
	users    domain.UserRepository
	threads  domain.ThreadRepository
	ids      domain.ThreadIDFetcher
	comments domain.CommentRepository
	replies  domain.ReplyRepository
	likes    domain.LikeRepository
	pingers  map[string]rest.Pinger
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare database
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to prepare storage: %v", err)
	}
	defer repos.close()

	// prepare cache
	if cfg.Cache.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr(),
			Password: cfg.Cache.Pass,
			DB:       cfg.Cache.DB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Errorf("got error when closing the cache connection: %v", err)
			}
		}()
		if err := client.Ping(ctx).Err(); err != nil {
			logrus.Fatalf("failed to open connection to cache: %v", err)
		}
		repos.pingers["cache"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }

		// Repository协调层
		bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomFilterSize)
		if err := repository.WarmUpThreadBloom(ctx, repos.ids, bloomRepo, bloomWarmUpBatch); err != nil {
			// 过滤器未就绪时 Exists 始终放行
			logrus.Errorf("failed to warm up bloom filter: %v", err)
		}
		repos.threads = repository.NewThreadRepository(repos.threads, bloomRepo)
		repos.likes = repository.NewLikeRepository(repos.likes, myRedisCache.NewLikeCountCache(client, cfg.LikeCountTTL))
	} else {
		logrus.Info("cache disabled, reading straight from the database")
	}

	if cfg.IsDevelopment() {
		if err := seedDevelopmentUser(ctx, repos.users, cfg.AccessTokenKey); err != nil {
			logrus.Warnf("failed to seed development user: %v", err)
		}
	}

	// Build service Layer
	threadSvc := thread.NewService(repos.threads, repos.comments, repos.replies, repos.likes)
	commentSvc := comment.NewService(repos.threads, repos.comments)
	replySvc := reply.NewService(repos.threads, repos.comments, repos.replies)
	likeSvc := like.NewService(repos.threads, repos.comments, repos.likes)

	// prepare gin
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	route := gin.New()
	route.Use(gin.Recovery(), gin.Logger())
	route.Use(middleware.CORS(cfg.AllowedOrigins))
	route.Use(middleware.Metrics())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	route.GET("/metrics", middleware.MetricsHandler())

	// Register routes
	rest.RegisterRoutes(route, rest.Handlers{
		Thread:  rest.NewThreadHandler(threadSvc),
		Comment: rest.NewCommentHandler(commentSvc),
		Reply:   rest.NewReplyHandler(replySvc),
		Like:    rest.NewLikeHandler(likeSvc),
		Health:  rest.NewHealthHandler(repos.pingers),
	}, middleware.AuthMiddleware(cfg.AccessTokenKey))

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting")
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Database.Driver == config.DriverMemory {
		logrus.Warn("using the in-memory store, data is lost on restart")
		store := memory.New()
		return &repositories{
			users:    store,
			threads:  store,
			ids:      store,
			comments: store,
			replies:  store,
			likes:    store,
			pingers:  map[string]rest.Pinger{},
			close:    func() {},
		}, nil
	}

	db, err := gormdb.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := gormdb.Migrate(db); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	threads := gormdb.NewThreadRepository(db, gormdb.DefaultIDGenerator)
	return &repositories{
		users:    gormdb.NewUserRepository(db, gormdb.DefaultIDGenerator),
		threads:  threads,
		ids:      threads,
		comments: gormdb.NewCommentRepository(db, gormdb.DefaultIDGenerator),
		replies:  gormdb.NewReplyRepository(db, gormdb.DefaultIDGenerator),
		likes:    gormdb.NewLikeRepository(db),
		pingers:  map[string]rest.Pinger{"database": sqlDB.PingContext},
		close: func() {
			if err := sqlDB.Close(); err != nil {
				logrus.Errorf("got error when closing the DB connection: %v", err)
			}
		},
	}, nil
}
