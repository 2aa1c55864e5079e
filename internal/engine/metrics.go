package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests       atomic.Int64
	VideoInfoRequests    atomic.Int64
	RelatedRequests      atomic.Int64
	ChannelRequests      atomic.Int64
	PlaylistRequests     atomic.Int64
	ContinuationRequests atomic.Int64
	FetchRequests        atomic.Int64
	FetchErrors          atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":       metrics.SearchRequests.Load(),
		"video_info_requests":   metrics.VideoInfoRequests.Load(),
		"related_requests":      metrics.RelatedRequests.Load(),
		"channel_requests":      metrics.ChannelRequests.Load(),
		"playlist_requests":     metrics.PlaylistRequests.Load(),
		"continuation_requests": metrics.ContinuationRequests.Load(),
		"fetch_requests":        metrics.FetchRequests.Load(),
		"fetch_errors":          metrics.FetchErrors.Load(),
		"cache_hits":            hits,
		"cache_misses":          misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "video_info_requests", "related_requests",
		"channel_requests", "playlist_requests", "continuation_requests",
		"fetch_requests", "fetch_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the youtube sub-package and tool layer.
func IncrSearchRequests()       { metrics.SearchRequests.Add(1) }
func IncrVideoInfoRequests()    { metrics.VideoInfoRequests.Add(1) }
func IncrRelatedRequests()      { metrics.RelatedRequests.Add(1) }
func IncrChannelRequests()      { metrics.ChannelRequests.Add(1) }
func IncrPlaylistRequests()     { metrics.PlaylistRequests.Add(1) }
func IncrContinuationRequests() { metrics.ContinuationRequests.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
