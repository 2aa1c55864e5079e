// Package toolutil provides shared helper functions for ytbpy MCP tools.
package toolutil

import (
	"context"

	"github.com/tn3w/ytbpy/internal/engine"
)

// ClampLimit normalizes a requested result count: non-positive falls back to
// def, anything above max is capped.
func ClampLimit(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// Cached runs compute through the engine result cache: a hit short-circuits,
// otherwise compute runs under slow-operation tracking and a successful
// result is stored under key. Errors are never cached.
func Cached[T any](ctx context.Context, op, key string, compute func() (T, error)) (T, error) {
	if out, ok := engine.CacheLoadJSON[T](ctx, key); ok {
		return out, nil
	}
	var out T
	err := engine.TrackOperation(ctx, op, func(context.Context) error {
		var cerr error
		out, cerr = compute()
		return cerr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	engine.CacheStoreJSON(ctx, key, out)
	return out, nil
}
