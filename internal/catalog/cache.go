package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
)

const projectsKey = "catalog:projects"

// Source is anything that can produce the full project catalog.
type Source interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// Cache is a read-through redis cache in front of a catalog Source. The
// whole catalog is one JSON value with a TTL; a cold or broken cache falls
// back to the source, and cache write failures are logged but never fail a
// read.
type Cache struct {
	client *redis.Client
	source Source
	ttl    time.Duration
	log    *zap.Logger
}

func NewCache(client *redis.Client, source Source, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{client: client, source: source, ttl: ttl, log: log}
}

func (c *Cache) ListProjects(ctx context.Context) ([]domain.Project, error) {
	data, err := c.client.Get(ctx, projectsKey).Bytes()
	if err == nil {
		var projects []domain.Project
		if err := json.Unmarshal(data, &projects); err == nil {
			return projects, nil
		}
		c.log.Warn("discarding unreadable catalog cache entry", zap.Error(err))
	} else if err != redis.Nil {
		c.log.Warn("catalog cache read failed, falling back to store", zap.Error(err))
	}

	projects, err := c.source.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	c.prime(ctx, projects)
	return projects, nil
}

// Refresh re-primes the cache from the source. Used by the scheduler and at
// startup.
func (c *Cache) Refresh(ctx context.Context) error {
	projects, err := c.source.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog cache: %w", err)
	}
	c.prime(ctx, projects)
	return nil
}

func (c *Cache) prime(ctx context.Context, projects []domain.Project) {
	data, err := json.Marshal(projects)
	if err != nil {
		c.log.Warn("marshal catalog for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, projectsKey, data, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache write failed", zap.Error(err))
	}
}
