package toolutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tn3w/ytbpy/internal/engine"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero falls back to default", 0, 10},
		{"negative falls back to default", -5, 10},
		{"within range", 25, 25},
		{"over max is capped", 500, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampLimit(tt.n, 10, 50); got != tt.want {
				t.Errorf("ClampLimit(%d, 10, 50) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestCached(t *testing.T) {
	engine.Init(engine.Config{})
	engine.InitCache("", time.Minute, 100, 5*time.Minute)

	type result struct {
		Value string `json:"value"`
	}
	ctx := context.Background()

	t.Run("computes once then hits cache", func(t *testing.T) {
		key := engine.CacheKey("toolutil_test", "once")
		calls := 0
		compute := func() (result, error) {
			calls++
			return result{Value: "fresh"}, nil
		}

		first, err := Cached(ctx, "test_op", key, compute)
		if err != nil || first.Value != "fresh" {
			t.Fatalf("first call = %+v, %v", first, err)
		}
		second, err := Cached(ctx, "test_op", key, compute)
		if err != nil || second.Value != "fresh" {
			t.Fatalf("second call = %+v, %v", second, err)
		}
		if calls != 1 {
			t.Errorf("compute ran %d times, want 1", calls)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		key := engine.CacheKey("toolutil_test", "error")
		calls := 0
		fail := errors.New("upstream down")

		if _, err := Cached(ctx, "test_op", key, func() (result, error) {
			calls++
			return result{}, fail
		}); !errors.Is(err, fail) {
			t.Fatalf("err = %v", err)
		}
		if _, err := Cached(ctx, "test_op", key, func() (result, error) {
			calls++
			return result{Value: "recovered"}, nil
		}); err != nil {
			t.Fatalf("retry err = %v", err)
		}
		if calls != 2 {
			t.Errorf("compute ran %d times, want 2 (failure must not be cached)", calls)
		}
	})
}
