// Package cache holds the redis read-through cache for account
// balances. Postgres stays the source of truth; every settlement
// mutation invalidates the cached entry and cache failures only cost a
// database read.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"casino-ledger/internal/config"
	"casino-ledger/internal/model"
)

const keyBalance = "balance:%d"

// BalanceCache caches GET-balance responses.
type BalanceCache interface {
	Get(ctx context.Context, userID int64) (*model.BalanceResponse, bool)
	Set(ctx context.Context, userID int64, resp *model.BalanceResponse)
	Invalidate(ctx context.Context, userID int64)
}

type RedisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedisBalanceCache(cfg config.RedisConfig, logger zerolog.Logger) (*RedisBalanceCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisBalanceCache{client: client, ttl: cfg.BalanceTTL, logger: logger}, nil
}

func (c *RedisBalanceCache) Get(ctx context.Context, userID int64) (*model.BalanceResponse, bool) {
	data, err := c.client.Get(ctx, fmt.Sprintf(keyBalance, userID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Int64("user_id", userID).Msg("balance cache read failed")
		}
		return nil, false
	}

	var resp model.BalanceResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *RedisBalanceCache) Set(ctx context.Context, userID int64, resp *model.BalanceResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, fmt.Sprintf(keyBalance, userID), data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Int64("user_id", userID).Msg("balance cache write failed")
	}
}

func (c *RedisBalanceCache) Invalidate(ctx context.Context, userID int64) {
	if err := c.client.Del(ctx, fmt.Sprintf(keyBalance, userID)).Err(); err != nil {
		c.logger.Warn().Err(err).Int64("user_id", userID).Msg("balance cache invalidation failed")
	}
}

func (c *RedisBalanceCache) Close() error {
	return c.client.Close()
}

// NopBalanceCache disables caching; used when redis is not configured
// and in tests.
type NopBalanceCache struct{}

func (NopBalanceCache) Get(context.Context, int64) (*model.BalanceResponse, bool) { return nil, false }
func (NopBalanceCache) Set(context.Context, int64, *model.BalanceResponse)        {}
func (NopBalanceCache) Invalidate(context.Context, int64)                         {}
