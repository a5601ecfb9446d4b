package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecencyCache keeps per-question answer timestamps in Redis so repeated
// simulado runs don't re-read the history collection for every candidate.
// A nil cache is valid and always misses, mirroring how the service treats
// an unconfigured broker.
type RecencyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecencyCache(client *redis.Client, ttl time.Duration) *RecencyCache {
	return &RecencyCache{client: client, ttl: ttl}
}

func (c *RecencyCache) Get(ctx context.Context, questionID string) ([]time.Time, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, key(questionID)).Result()
	if err != nil {
		return nil, false
	}
	var timestamps []time.Time
	if err := json.Unmarshal([]byte(val), &timestamps); err != nil {
		return nil, false
	}
	return timestamps, true
}

// Set stores the timestamps best-effort; a failed write only costs the next
// reader a Mongo round trip.
func (c *RecencyCache) Set(ctx context.Context, questionID string, timestamps []time.Time) {
	if c == nil || c.client == nil {
		return
	}
	body, err := json.Marshal(timestamps)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(questionID), body, c.ttl)
}

func key(questionID string) string {
	return "simulado:answers:" + questionID
}
