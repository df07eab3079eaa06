package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-gota/gota/series"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/logging"
	"github.com/irfndi/oddsframe/internal/telemetry"
)

// ResultCacheEntry is a query result stored as CSV with its column types and
// metadata.
type ResultCacheEntry struct {
	Dataset     string                 `json:"dataset"`
	Fingerprint string                 `json:"fingerprint"`
	Rows        int                    `json:"rows"`
	Columns     int                    `json:"columns"`
	Types       map[string]series.Type `json:"types"`
	CSV         string                 `json:"csv"`
	CachedAt    time.Time              `json:"cached_at"`
	ExpiresAt   time.Time              `json:"expires_at"`
}

// ResultCacheStats tracks cache performance metrics
type ResultCacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Sets    int64 `json:"sets"`
	Skipped int64 `json:"skipped"`
}

// ResultCache stores query results keyed by dataset name and query fingerprint.
type ResultCache interface {
	Get(ctx context.Context, datasetName, fingerprint string) (*dataset.Dataset, bool)
	Set(ctx context.Context, datasetName, fingerprint string, ds *dataset.Dataset) error
	Invalidate(ctx context.Context, datasetName string) (int, error)
	GetStats() ResultCacheStats
}

// RedisResultCache implements ResultCache using Redis
type RedisResultCache struct {
	redis  *redis.Client
	ttl    time.Duration
	mu     sync.RWMutex
	stats  ResultCacheStats
	prefix string
	logger *logging.StandardLogger
}

// NewRedisResultCache creates a new Redis-based result cache
func NewRedisResultCache(redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisResultCache {
	return &RedisResultCache{
		redis:  redisClient,
		ttl:    ttl,
		prefix: "oddsframe:result:",
		logger: logging.Wrap(logger),
	}
}

func (c *RedisResultCache) key(datasetName, fingerprint string) string {
	return c.prefix + datasetName + ":" + fingerprint
}

func (c *RedisResultCache) miss() {
	c.mu.Lock()
	c.stats.Misses++
	c.mu.Unlock()
}

// Get returns the cached result, or false on a miss or any Redis error.
func (c *RedisResultCache) Get(ctx context.Context, datasetName, fingerprint string) (*dataset.Dataset, bool) {
	ctx, span := telemetry.StartSpan(ctx, telemetry.GetCacheTracer(), "cache.get",
		attribute.String("cache.dataset", datasetName))
	defer span.End()

	start := time.Now()
	cacheKey := c.key(datasetName, fingerprint)

	data, err := c.redis.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		c.miss()
		c.logger.LogCacheOperation("get", cacheKey, false, time.Since(start).Milliseconds())
		return nil, false
	}
	if err != nil {
		telemetry.RecordError(span, err)
		c.logger.WithComponent("result_cache").WithError(err).Warn("Redis error getting cached result")
		c.miss()
		return nil, false
	}

	var entry ResultCacheEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		c.logger.WithComponent("result_cache").WithError(err).Warn("Error deserializing cached result")
		c.miss()
		return nil, false
	}

	ds, err := dataset.ReadCSVWithTypes(strings.NewReader(entry.CSV), entry.Types)
	if err != nil || ds.Nrow() != entry.Rows || ds.Ncol() != entry.Columns {
		c.logger.WithComponent("result_cache").WithField("cache_key", cacheKey).Warn("Cached result does not match its metadata")
		c.miss()
		return nil, false
	}

	c.mu.Lock()
	c.stats.Hits++
	c.mu.Unlock()
	span.SetAttributes(attribute.Bool("cache.hit", true))
	c.logger.LogCacheOperation("get", cacheKey, true, time.Since(start).Milliseconds())
	return ds, true
}

// Set stores ds for the query. Results without rows or columns are not
// cached since CSV cannot carry their shape.
func (c *RedisResultCache) Set(ctx context.Context, datasetName, fingerprint string, ds *dataset.Dataset) error {
	if ds.Nrow() == 0 || ds.Ncol() == 0 {
		c.mu.Lock()
		c.stats.Skipped++
		c.mu.Unlock()
		return nil
	}

	ctx, span := telemetry.StartSpan(ctx, telemetry.GetCacheTracer(), "cache.set",
		attribute.String("cache.dataset", datasetName))
	defer span.End()

	var buf bytes.Buffer
	if err := ds.WriteCSV(&buf); err != nil {
		return fmt.Errorf("error serializing result: %w", err)
	}

	now := time.Now()
	entry := ResultCacheEntry{
		Dataset:     datasetName,
		Fingerprint: fingerprint,
		Rows:        ds.Nrow(),
		Columns:     ds.Ncol(),
		Types:       ds.Types(),
		CSV:         buf.String(),
		CachedAt:    now,
		ExpiresAt:   now.Add(c.ttl),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error serializing result: %w", err)
	}

	cacheKey := c.key(datasetName, fingerprint)
	if err := c.redis.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		telemetry.RecordError(span, err)
		return fmt.Errorf("redis error caching result: %w", err)
	}

	c.mu.Lock()
	c.stats.Sets++
	c.mu.Unlock()
	return nil
}

// Invalidate removes every cached result of datasetName and returns how many
// entries were deleted.
func (c *RedisResultCache) Invalidate(ctx context.Context, datasetName string) (int, error) {
	pattern := c.prefix + datasetName + ":*"

	// Get all keys matching the pattern using SCAN for better performance
	var keys []string
	iter := c.redis.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("error scanning cache keys: %w", err)
	}

	if len(keys) == 0 {
		return 0, nil
	}

	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		return 0, fmt.Errorf("error clearing cache: %w", err)
	}

	c.logger.WithOperation("invalidate").WithFields(logrus.Fields{
		"dataset": datasetName,
		"entries": len(keys),
	}).Info("Invalidated cached results")
	return len(keys), nil
}

// GetStats returns current cache statistics
func (c *RedisResultCache) GetStats() ResultCacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// LogStats logs current cache performance statistics
func (c *RedisResultCache) LogStats() {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(stats.Hits) / float64(total) * 100
	}

	c.logger.WithComponent("result_cache").WithFields(logrus.Fields{
		"hits":     stats.Hits,
		"misses":   stats.Misses,
		"sets":     stats.Sets,
		"hit_rate": fmt.Sprintf("%.2f%%", hitRate),
	}).Info("Result cache stats")
}

// ErrCacheDisabled is returned by NoopCache.Invalidate.
var ErrCacheDisabled = errors.New("result cache disabled")

// NoopCache is used when Redis is not configured; every lookup misses.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, string) (*dataset.Dataset, bool) { return nil, false }

func (NoopCache) Set(context.Context, string, string, *dataset.Dataset) error { return nil }

func (NoopCache) Invalidate(context.Context, string) (int, error) { return 0, ErrCacheDisabled }

func (NoopCache) GetStats() ResultCacheStats { return ResultCacheStats{} }
