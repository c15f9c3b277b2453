package cachedresults

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	values map[any]any
}

func (m *memoryStore) Get(_ context.Context, key any) (any, error) {
	value, exists := m.values[key]
	if !exists {
		return nil, errors.New("value not found")
	}

	return value, nil
}

func (m *memoryStore) GetWithTTL(ctx context.Context, key any) (any, time.Duration, error) {
	value, err := m.Get(ctx, key)
	return value, 0, err
}

func (m *memoryStore) Set(_ context.Context, key any, value any, _ ...store.Option) error {
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key any) error {
	delete(m.values, key)
	return nil
}

func (m *memoryStore) Invalidate(_ context.Context, _ ...store.InvalidateOption) error {
	return nil
}

func (m *memoryStore) Clear(_ context.Context) error {
	m.values = map[any]any{}
	return nil
}

func (m *memoryStore) GetType() string {
	return "memory"
}

func TestCachePrefix(t *testing.T) {
	memory := &memoryStore{values: map[any]any{}}
	c := &Cache{
		Cache:  cache.New[string](memory),
		Prefix: "itinerary/",
	}

	require.NoError(t, c.Set(context.Background(), "abc", "value"))

	value, err := c.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
	assert.Contains(t, memory.values, "itinerary/abc")

	_, err = c.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, Digest([]byte("a")), Digest([]byte("a")))
	assert.NotEqual(t, Digest([]byte("a")), Digest([]byte("b")))
	assert.Len(t, Digest([]byte("a")), 64)
}
