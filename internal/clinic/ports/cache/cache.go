// Package cache defines the response-cache port of the clinic core.
package cache

import (
	"context"
	"time"
)

// Cache is a string key/value cache with per-entry TTL. Get returns an empty
// string, not an error, on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
