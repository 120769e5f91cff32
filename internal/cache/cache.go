// Package cache provides an in-process key/value cache with sliding expiration.
//
// Callers depend on the Cache interface and receive an implementation through the DI
// container, so the cache is never process-global state.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/allisson/passcrypt/internal/errors"
)

// ErrTypeMismatch indicates a cached value does not have the type the caller asked for.
var ErrTypeMismatch = errors.New("cached value has unexpected type")

// Factory computes the value for a missing key.
type Factory func(ctx context.Context) (any, error)

// Cache stores computed values by key.
type Cache interface {
	// GetOrSet returns the cached value for key, or calls factory, stores its result for ttl
	// and returns it. Factory errors are returned and not stored. A ttl of zero or less
	// computes the value without storing it.
	GetOrSet(ctx context.Context, key string, factory Factory, ttl time.Duration) (any, error)

	// Remove deletes key from the cache.
	Remove(key string)

	// Close releases background resources. The cache must not be used afterwards.
	Close()
}

// GetOrSetTyped is GetOrSet for a factory returning T.
// Returns ErrTypeMismatch if key already holds a value of another type.
func GetOrSetTyped[T any](
	ctx context.Context,
	c Cache,
	key string,
	factory func(ctx context.Context) (T, error),
	ttl time.Duration,
) (T, error) {
	var zero T

	value, err := c.GetOrSet(ctx, key, func(ctx context.Context) (any, error) {
		return factory(ctx)
	}, ttl)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T", ErrTypeMismatch, key, value)
	}
	return typed, nil
}
