package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
)

type fakeSource struct {
	projects []domain.Project
	err      error
	calls    int
}

func (f *fakeSource) ListProjects(ctx context.Context) ([]domain.Project, error) {
	f.calls++
	return f.projects, f.err
}

func setupCache(t *testing.T, source Source) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCache(client, source, time.Hour, zap.NewNop()), mr
}

func TestCacheMissLoadsFromSourceAndPrimes(t *testing.T) {
	source := &fakeSource{projects: []domain.Project{{ID: 1, Title: "Scrappy Gift Pouch"}}}
	cache, mr := setupCache(t, source)

	got, err := cache.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, source.calls)

	// second read served from redis
	got, err = cache.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, source.calls)

	assert.True(t, mr.Exists("catalog:projects"))
}

func TestCacheHitSkipsSource(t *testing.T) {
	source := &fakeSource{}
	cache, mr := setupCache(t, source)

	data, err := json.Marshal([]domain.Project{{ID: 7, Title: "Patchwork Table Runner"}})
	require.NoError(t, err)
	mr.Set("catalog:projects", string(data))

	got, err := cache.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, 0, source.calls)
}

func TestCacheCorruptEntryFallsBack(t *testing.T) {
	source := &fakeSource{projects: []domain.Project{{ID: 2}}}
	cache, mr := setupCache(t, source)
	mr.Set("catalog:projects", "not json")

	got, err := cache.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, source.calls)
}

func TestCacheSourceErrorPropagates(t *testing.T) {
	source := &fakeSource{err: errors.New("db down")}
	cache, _ := setupCache(t, source)

	_, err := cache.ListProjects(context.Background())
	assert.Error(t, err)
}

func TestCacheRefresh(t *testing.T) {
	source := &fakeSource{projects: []domain.Project{{ID: 3}}}
	cache, mr := setupCache(t, source)

	require.NoError(t, cache.Refresh(context.Background()))
	assert.True(t, mr.Exists("catalog:projects"))

	source.err = errors.New("db down")
	assert.Error(t, cache.Refresh(context.Background()))
}
