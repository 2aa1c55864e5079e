package ytserver

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tn3w/ytbpy/internal/engine"
	"github.com/tn3w/ytbpy/internal/engine/youtube"
	"github.com/tn3w/ytbpy/internal/toolutil"
)

type searchVideosInput struct {
	Query      string `json:"query" jsonschema:"Search keywords (e.g. golang concurrency talk)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum videos to return (default 10, capped at 100)"`
}

func registerSearchVideos(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_videos",
		Description: "Search YouTube videos by keyword. Follows result pages until max_results videos are collected. Returns normalized records: video_id, url, title, channel, duration, views, published time, badges, live/upcoming status, thumbnails.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input searchVideosInput) (*mcp.CallToolResult, *youtube.SearchResult, error) {
		query := strings.TrimSpace(input.Query)
		if query == "" {
			return nil, nil, errors.New("query is required")
		}
		limit := toolutil.ClampLimit(input.MaxResults, 10, 100)

		key := engine.CacheKey("search_videos", query, strconv.Itoa(limit))
		out, err := toolutil.Cached(ctx, "search_videos", key, func() (*youtube.SearchResult, error) {
			return youtube.SearchVideos(ctx, query, limit)
		})
		if err != nil {
			slog.Warn("search_videos failed", slog.String("query", query), slog.Any("error", err))
			return nil, &youtube.SearchResult{Query: query, Results: []youtube.Video{}, Error: err.Error()}, nil
		}

		engine.RecordLookup(ctx, "search_videos", query, out.ResultsCount)
		return nil, out, nil
	})
}
