package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/models"
)

// KeyPrefix namespaces layout entries in Redis
const KeyPrefix = "cycles:cache:"

// Redis is a Redis-backed layout cache with graceful fallback.
// Once Redis misbehaves the cache disables itself and every Get misses.
type Redis struct {
	client *redis.Client
	logger zerolog.Logger
	ttl    time.Duration

	mu       sync.RWMutex
	disabled bool // circuit breaker state
}

// NewRedis connects to Redis. An unreachable server is not an error: the
// returned cache starts disabled and the service runs without caching.
func NewRedis(cfg Config, logger zerolog.Logger) *Redis {
	logger = logger.With().Str("component", "layout_cache").Logger()

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultConfig().TTL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis cache unavailable, running without layout caching")
		_ = client.Close()
		return &Redis{logger: logger, ttl: ttl, disabled: true}
	}

	logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", ttl).Msg("Redis layout cache initialized")
	return &Redis{client: client, logger: logger, ttl: ttl}
}

// IsAvailable returns true if the cache is operational.
func (r *Redis) IsAvailable() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.disabled && r.client != nil
}

// Get returns the cached layout for key
func (r *Redis) Get(ctx context.Context, key string) (models.DayBuckets, bool) {
	if !r.IsAvailable() {
		return nil, false
	}

	data, err := r.client.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		r.handleError(err, "get")
		return nil, false
	}

	var buckets models.DayBuckets
	if err := json.Unmarshal(data, &buckets); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cached layout")
		return nil, false
	}
	return buckets, true
}

// Set stores the layout for key with the configured TTL
func (r *Redis) Set(ctx context.Context, key string, buckets models.DayBuckets) {
	if !r.IsAvailable() {
		return
	}

	data, err := json.Marshal(buckets)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("failed to encode layout for cache")
		return
	}

	if err := r.client.Set(ctx, KeyPrefix+key, data, r.ttl).Err(); err != nil {
		r.handleError(err, "set")
	}
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// handleError trips the circuit breaker on anything but a plain miss.
func (r *Redis) handleError(err error, operation string) {
	if err == nil || errors.Is(err, redis.Nil) {
		return
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		r.logger.Debug().Err(err).Str("operation", operation).Msg("layout cache request abandoned")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.disabled {
		r.logger.Error().Err(err).Str("operation", operation).Msg("Redis error, disabling layout cache")
		r.disabled = true
	}
}
