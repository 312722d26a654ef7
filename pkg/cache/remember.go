package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Remember returns the cached value under key, or computes it with fn and
// stores it for ttl. A nil store always computes. Cache read and write
// failures are reported through onErr and never fail the call.
func Remember[T any](ctx context.Context, store Store, key string, ttl time.Duration, onErr func(error), fn func() (T, error)) (T, error) {
	if store == nil || key == "" {
		return fn()
	}

	var cached T
	err := store.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrMiss) && onErr != nil {
		onErr(err)
	}

	val, err := fn()
	if err != nil {
		return val, err
	}
	if err := store.SetJSON(ctx, key, val, ttl); err != nil && onErr != nil {
		onErr(err)
	}
	return val, nil
}
