//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"belegplan/internal/planner/cache"
	"belegplan/internal/planner/models"
	"belegplan/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	ctx   context.Context
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.ctx = context.Background()
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisCacheSuite) plan() *models.ExtractionPlan {
	return &models.ExtractionPlan{
		ApplicationID: "app-1",
		Counts:        models.PlanCounts{Persons: 2, DocumentsToScan: 3, ValuesToExtract: 7},
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func (s *RedisCacheSuite) TestRoundTrip() {
	c := cache.NewRedisCache(s.redis.Client, time.Minute)
	s.Require().NoError(c.Set(s.ctx, "app-1", s.plan()))

	cached, err := c.Get(s.ctx, "app-1")
	s.Require().NoError(err)
	s.Equal("app-1", cached.ApplicationID)
	s.Equal(models.PlanCounts{Persons: 2, DocumentsToScan: 3, ValuesToExtract: 7}, cached.Counts)
}

func (s *RedisCacheSuite) TestMiss() {
	c := cache.NewRedisCache(s.redis.Client, time.Minute)
	_, err := c.Get(s.ctx, "unknown")
	s.Require().ErrorIs(err, cache.ErrNotFound)
}

func (s *RedisCacheSuite) TestExpiry() {
	c := cache.NewRedisCache(s.redis.Client, time.Second)
	s.Require().NoError(c.Set(s.ctx, "app-1", s.plan()))
	time.Sleep(1500 * time.Millisecond)

	_, err := c.Get(s.ctx, "app-1")
	s.Require().ErrorIs(err, cache.ErrNotFound)
}
