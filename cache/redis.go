// Package cache holds the Redis client and the cached aggregates built on it.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"carbon_zero/config"

	"github.com/redis/go-redis/v9"
)

const (
	carbonTotalKey = "carbon:total"
	carbonTotalTTL = time.Minute
)

// NewRedis returns nil, nil when no address is configured.
func NewRedis(ctx context.Context, cfg config.App) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	return rdb, nil
}

type CarbonTotals struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCarbonTotals(rdb *redis.Client) *CarbonTotals {
	return &CarbonTotals{rdb: rdb, ttl: carbonTotalTTL}
}

func (c *CarbonTotals) GetCarbonTotal(ctx context.Context) (float64, bool) {
	total, err := c.rdb.Get(ctx, carbonTotalKey).Float64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("read %s: %v", carbonTotalKey, err)
		}
		return 0, false
	}
	return total, true
}

func (c *CarbonTotals) SetCarbonTotal(ctx context.Context, total float64) {
	if err := c.rdb.Set(ctx, carbonTotalKey, total, c.ttl).Err(); err != nil {
		log.Printf("write %s: %v", carbonTotalKey, err)
	}
}

func (c *CarbonTotals) InvalidateCarbonTotal(ctx context.Context) {
	if err := c.rdb.Del(context.WithoutCancel(ctx), carbonTotalKey).Err(); err != nil {
		log.Printf("delete %s: %v", carbonTotalKey, err)
	}
}
