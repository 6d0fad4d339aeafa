package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-finance-api/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ICacheClient is the subset of the Redis client the services use. A nil
// ICacheClient disables caching.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const defaultCacheTTL = 10 * time.Minute

func accountsCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("accounts:%s", userID)
}

func expensesCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("dashboard:%s:expenses", userID)
}

func summaryCacheKey(accountID uuid.UUID) string {
	return fmt.Sprintf("account:%s:summary", accountID)
}

// chartCacheKey is scoped to the UTC day the window ends on, since every
// range is relative to today.
func chartCacheKey(accountID uuid.UUID, rangeKey string, day time.Time) string {
	return fmt.Sprintf("account:%s:chart:%s:%s", accountID, rangeKey, day.UTC().Format(time.DateOnly))
}

// readCache decodes a cached JSON value into dest. Any miss or decode failure
// reports false so the caller falls through to the database.
func readCache(ctx context.Context, cache ICacheClient, key string, dest interface{}) bool {
	if cache == nil {
		return false
	}
	cached, err := cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.WithField("key", key).WithError(err).Warn("Cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		logger.Log.WithField("key", key).WithError(err).Warn("Discarding undecodable cache entry")
		return false
	}
	return true
}

func writeCache(ctx context.Context, cache ICacheClient, key string, value interface{}, ttl time.Duration) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Log.WithField("key", key).WithError(err).Warn("Cache write failed")
	}
}
