// Package cache memoizes computed cycle layouts keyed by schedule content.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogem/shift-cycles/models"
)

// Backend names accepted by New
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// LayoutCache stores day buckets computed for a schedule.
// Implementations never fail a request: errors degrade to cache misses.
type LayoutCache interface {
	Get(ctx context.Context, key string) (models.DayBuckets, bool)
	Set(ctx context.Context, key string, buckets models.DayBuckets)
	Close() error
}

// Config contains cache configuration.
type Config struct {
	Backend    string
	MaxEntries int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// DefaultConfig returns default cache configuration.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendMemory,
		MaxEntries: 256,
		RedisAddr:  "localhost:6379",
		TTL:        time.Hour,
	}
}

// New creates the layout cache selected by cfg.Backend
func New(cfg Config, logger zerolog.Logger) (LayoutCache, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemory(cfg.MaxEntries), nil
	case BackendRedis:
		return NewRedis(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cfg.Backend)
	}
}

// Key derives the cache key for a schedule from its full content, so any edit
// to the schedule, its slots, or referenced patterns yields a different key.
// The key format is: layout:sha256(json(schedule))
func Key(schedule *models.ShiftSchedule) string {
	data, _ := json.Marshal(schedule)
	hash := sha256.Sum256(data)
	return "layout:" + hex.EncodeToString(hash[:])
}
