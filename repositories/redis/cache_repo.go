package redis

import (
	// Go Internal Packages
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	// External Packages
	"github.com/redis/go-redis/v9"
)

type PayloadCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPayloadCache(client *redis.Client, ttl time.Duration) *PayloadCache {
	return &PayloadCache{client: client, ttl: ttl}
}

// key derives the cache key for a (payload, amount) pair. Payloads run to
// a few hundred characters, so they are hashed instead of embedded.
func (c *PayloadCache) key(payload, amount string) string {
	sum := sha256.Sum256([]byte(payload + "\x00" + amount))
	return fmt.Sprintf("qris:dynamic:%x", sum[:12])
}

// Put caches the dynamic payload produced for a (payload, amount) pair.
func (c *PayloadCache) Put(ctx context.Context, payload, amount, dynamic string) error {
	return c.client.Set(ctx, c.key(payload, amount), dynamic, c.ttl).Err()
}

// Get returns the cached dynamic payload, or "" when there is none.
func (c *PayloadCache) Get(ctx context.Context, payload, amount string) (string, error) {
	value, err := c.client.Get(ctx, c.key(payload, amount)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
