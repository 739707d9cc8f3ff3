package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const namePrefix = "name:"

// RedisCache is a Redis-backed name cache, useful when several instances
// share one metadata cache.
type RedisCache struct {
	cli *redis.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisCache(cfg RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return &RedisCache{cli: rdb}
}

func (r *RedisCache) GetName(symbol string) (string, bool) {
	v, err := r.cli.Get(context.Background(), namePrefix+symbol).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *RedisCache) SetName(symbol, name string, ttl time.Duration) {
	_ = r.cli.Set(context.Background(), namePrefix+symbol, name, ttl).Err()
}

// Close releases the underlying Redis connection pool.
func (r *RedisCache) Close() error {
	return r.cli.Close()
}
