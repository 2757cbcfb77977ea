package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"belegplan/internal/planner/models"
)

const planKeyPrefix = "belegplan:plan:"

// RedisCache caches plans in Redis so replicas share one cache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, applicationID string) (*models.ExtractionPlan, error) {
	raw, err := c.client.Get(ctx, planKeyPrefix+applicationID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cached plan: %w", err)
	}
	var plan models.ExtractionPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("decode cached plan: %w", err)
	}
	return &plan, nil
}

func (c *RedisCache) Set(ctx context.Context, applicationID string, plan *models.ExtractionPlan) error {
	if plan == nil {
		return nil
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err := c.client.Set(ctx, planKeyPrefix+applicationID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache plan: %w", err)
	}
	return nil
}
