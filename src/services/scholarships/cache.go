package scholarships

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"Backend-Scholarship-Finder/src/logger"
)

const listCachePrefix = "scholarships:list:"

// Cache stores public listing responses in Redis. A nil client turns
// every call into a no-op so the API still works without Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, log logger.Logger) *Cache {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Cache{client: client, ttl: ttl, log: log}
}

func hashParams(params interface{}) string {
	b, _ := json.Marshal(params)
	h := sha1.New()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

// ListKey builds the cache key for one listing request.
func ListKey(kind string, params interface{}) string {
	return listCachePrefix + kind + ":" + hashParams(params)
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(val, dest) == nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("⚠️ failed to cache listing", map[string]interface{}{"key": key})
	}
}

// InvalidateLists drops every cached listing. Called after each write.
func (c *Cache) InvalidateLists(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, listCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.WithError(err).Warn("⚠️ failed to drop cached listing", map[string]interface{}{"key": iter.Val()})
		}
	}
	if err := iter.Err(); err != nil {
		c.log.WithError(err).Warn("⚠️ failed to scan cached listings", nil)
	}
}
