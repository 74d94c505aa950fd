package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DashboardCache holds computed dashboard payloads with a short TTL.
// Keys stay scoped under the user so a submission can invalidate every
// cached view at once. The analytics engine itself never sees this.
type DashboardCache interface {
	Key(userID, endpoint string, params ...string) string
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	InvalidateUser(ctx context.Context, userID string) error
}

type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a Redis-backed dashboard cache.
func NewDashboardCache(client *redis.Client, ttl time.Duration) DashboardCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &dashboardCache{client: client, ttl: ttl}
}

// Key hashes the endpoint and call parameters under the user's prefix.
func (c *dashboardCache) Key(userID, endpoint string, params ...string) string {
	sum := md5.Sum([]byte(endpoint + ":" + strings.Join(params, ":")))
	return fmt.Sprintf("dash:%s:%s", userID, hex.EncodeToString(sum[:]))
}

func (c *dashboardCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *dashboardCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateUser drops every cached dashboard view for the user.
func (c *dashboardCache) InvalidateUser(ctx context.Context, userID string) error {
	iter := c.client.Scan(ctx, 0, fmt.Sprintf("dash:%s:*", userID), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
