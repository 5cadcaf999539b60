package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/aaraainfra/weekly-mis/internal/config"
	"github.com/aaraainfra/weekly-mis/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	reportKey        = "report:current"
	defaultReportTTL = time.Minute
)

// ReportCache is a read-through cache of the current weekly document.
type ReportCache interface {
	Get(ctx context.Context) (*domain.WeeklyData, bool, error)
	Set(ctx context.Context, doc *domain.WeeklyData) error
	Invalidate(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.ReportTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultReportTTL
	}

	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) Get(ctx context.Context) (*domain.WeeklyData, bool, error) {
	payload, err := c.client.Get(ctx, reportKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var doc domain.WeeklyData
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, false, fmt.Errorf("decode cached report: %w", err)
	}

	return &doc, true, nil
}

func (c *redisReportCache) Set(ctx context.Context, doc *domain.WeeklyData) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode cached report: %w", err)
	}

	if err := c.client.Set(ctx, reportKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, reportKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (n *noopReportCache) Get(ctx context.Context) (*domain.WeeklyData, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) Set(ctx context.Context, doc *domain.WeeklyData) error {
	return nil
}

func (n *noopReportCache) Invalidate(ctx context.Context) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}
