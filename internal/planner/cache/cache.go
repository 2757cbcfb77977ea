// Package cache provides a short-lived plan cache. Plans are pure functions
// of profile and rule table, so a TTL bound is the only invalidation needed.
package cache

import (
	"context"
	"sync"
	"time"

	"belegplan/internal/planner/models"
	dErrors "belegplan/pkg/domain-errors"
)

// ErrNotFound is returned when no fresh cached plan exists.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "plan not cached")

// Store caches extraction plans per application.
type Store interface {
	Get(ctx context.Context, applicationID string) (*models.ExtractionPlan, error)
	Set(ctx context.Context, applicationID string, plan *models.ExtractionPlan) error
}

type cachedPlan struct {
	plan     models.ExtractionPlan
	storedAt time.Time
}

// InMemoryCache caches plans in memory with TTL expiration.
type InMemoryCache struct {
	mu    sync.RWMutex
	plans map[string]cachedPlan
	ttl   time.Duration
}

func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	return &InMemoryCache{plans: make(map[string]cachedPlan), ttl: ttl}
}

func (c *InMemoryCache) Get(_ context.Context, applicationID string) (*models.ExtractionPlan, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if cached, ok := c.plans[applicationID]; ok {
		if time.Since(cached.storedAt) < c.ttl {
			plan := cached.plan
			return &plan, nil
		}
	}
	return nil, ErrNotFound
}

func (c *InMemoryCache) Set(_ context.Context, applicationID string, plan *models.ExtractionPlan) error {
	if plan == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans[applicationID] = cachedPlan{plan: *plan, storedAt: time.Now()}
	return nil
}
