// Package rediscache provides a Redis-backed read-through cache for
// analysis reports. Reports are stored as JSON under report:<id> with a
// TTL, so repeated reads of a fresh report skip Postgres entirely.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"adpulse/internal/config/configs"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg configs.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// ReportCache implements port.ReportCache on a Redis client.
type ReportCache struct {
	rdb *redis.Client
}

// NewReportCache returns a cache over the given client.
func NewReportCache(rdb *redis.Client) *ReportCache {
	return &ReportCache{rdb: rdb}
}

// Get loads a cached report; port.ErrReportNotFound signals a miss.
func (c *ReportCache) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	data, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		return nil, port.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var report domain.Report
	if err = json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal cached report: %w", err)
	}
	return &report, nil
}

// Set stores a report with the given TTL.
func (c *ReportCache) Set(ctx context.Context, report *domain.Report, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err = c.rdb.Set(ctx, key(report.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func key(id uuid.UUID) string {
	return "report:" + id.String()
}
