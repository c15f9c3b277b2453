package cachedresults

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/travigo/itinerary/pkg/util"
)

const DefaultExpiration = 90 * time.Minute

type Cache struct {
	Cache cache.CacheInterface[string]

	Prefix string
}

// Setup builds a redis backed cache, TRAVIGO_CACHE_EXPIRATION overrides the default expiration
func (c *Cache) Setup(client *redis.Client) error {
	expiration := DefaultExpiration

	if value := util.GetEnvironmentVariables()["TRAVIGO_CACHE_EXPIRATION"]; value != "" {
		var err error
		if expiration, err = util.ParseDuration(value); err != nil {
			return err
		}
	}

	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	c.Cache = cache.New[string](redisStore)

	return nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.Cache.Get(ctx, c.Prefix+key)
}

func (c *Cache) Set(ctx context.Context, key string, value string) error {
	return c.Cache.Set(ctx, c.Prefix+key, value)
}

// Digest turns an arbitrary request body into a fixed length cache key
func Digest(body []byte) string {
	sum := sha256.Sum256(body)

	return hex.EncodeToString(sum[:])
}
