package testutil

import (
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// GetTestRedisOptions returns Redis options for the result cache tests.
// REDIS_TEST_ADDR overrides the address.
func GetTestRedisOptions() *redis.Options {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return &redis.Options{
		Addr: addr,
		DB:   1,
	}
}

// NewTestRedis starts an in-memory Redis server and a client bound to it.
// Both are closed when the test ends.
func NewTestRedis(t testing.TB) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)

	opts := GetTestRedisOptions()
	opts.Addr = mr.Addr()
	opts.DB = 0
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}
