package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppEnv         string
	ServerAddress  string
	ContextTimeout time.Duration
	AllowedOrigins []string

	Database Database
	Cache    Cache

	BloomFilterSize uint64
	LikeCountTTL    time.Duration

	AccessTokenKey string

	LogLevel  string
	LogFormat string
}

type Database struct {
	Driver        string
	Host          string
	Port          string
	User          string
	Pass          string
	Name          string
	MaxRetry      int
	RetryInterval time.Duration
}

// Cache is optional. An empty Host disables Redis.
type Cache struct {
	Host string
	Port string
	Pass string
	DB   int
}

func (c Cache) Enabled() bool {
	return c.Host != ""
}

func (c Cache) Addr() string {
	return c.Host + ":" + c.Port
}

// IsDevelopment reports whether APP_ENV was explicitly set to development.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

// Load reads the environment, after loading .env when one exists.
func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         strings.ToLower(getEnv("APP_ENV", EnvProduction)),
		ServerAddress:  getEnv("SERVER_ADDRESS", ":5000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		Database: Database{
			Driver:        strings.ToLower(getEnv("DATABASE_DRIVER", DriverMySQL)),
			Host:          getEnv("DATABASE_HOST", "localhost"),
			Port:          getEnv("DATABASE_PORT", "3306"),
			User:          getEnv("DATABASE_USER", "root"),
			Pass:          os.Getenv("DATABASE_PASS"),
			Name:          getEnv("DATABASE_NAME", "forum_api"),
			RetryInterval: 2 * time.Second,
		},
		Cache: Cache{
			Host: os.Getenv("CACHE_HOST"),
			Port: getEnv("CACHE_PORT", "6379"),
			Pass: os.Getenv("CACHE_PASS"),
		},
		AccessTokenKey: os.Getenv("ACCESS_TOKEN_KEY"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	switch cfg.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("invalid DATABASE_DRIVER %q", cfg.Database.Driver)
	}

	var err error
	if cfg.ContextTimeout, err = time.ParseDuration(getEnv("CONTEXT_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("invalid CONTEXT_TIMEOUT: %w", err)
	}
	if cfg.LikeCountTTL, err = time.ParseDuration(getEnv("LIKE_COUNT_TTL", "10m")); err != nil {
		return nil, fmt.Errorf("invalid LIKE_COUNT_TTL: %w", err)
	}
	if cfg.Database.MaxRetry, err = strconv.Atoi(getEnv("DATABASE_MAX_RETRY", "10")); err != nil {
		return nil, fmt.Errorf("invalid DATABASE_MAX_RETRY: %w", err)
	}
	if cfg.Cache.DB, err = strconv.Atoi(getEnv("CACHE_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_DB: %w", err)
	}
	if cfg.BloomFilterSize, err = strconv.ParseUint(getEnv("BLOOM_FILTER_SIZE", "10000000"), 10, 64); err != nil || cfg.BloomFilterSize == 0 {
		return nil, fmt.Errorf("invalid BLOOM_FILTER_SIZE: %q", os.Getenv("BLOOM_FILTER_SIZE"))
	}

	if cfg.AccessTokenKey == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
