package repository

import (
	"context"
	"time"
)

// CacheRepository stores computed schedule results keyed by an input
// fingerprint. Implementations must be safe for concurrent use.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
