package ytserver

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tn3w/ytbpy/internal/engine"
	"github.com/tn3w/ytbpy/internal/engine/youtube"
	"github.com/tn3w/ytbpy/internal/toolutil"
)

type videoInfoInput struct {
	Video string `json:"video" jsonschema:"Video ID or any watch/short/embed URL form"`
}

type relatedVideosInput struct {
	Video      string `json:"video" jsonschema:"Video ID or any watch/short/embed URL form"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum related videos to return (default 10, capped at 50)"`
}

func registerVideoInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_info",
		Description: "Get full metadata for a YouTube video: title, description, duration, views, likes, publish/upload dates, category, keywords, chapters, streaming formats, and thumbnails. Falls back to the public oEmbed endpoint when the player API is unavailable.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input videoInfoInput) (*mcp.CallToolResult, *youtube.VideoInfo, error) {
		if input.Video == "" {
			return nil, nil, errors.New("video is required")
		}
		id := youtube.ExtractVideoID(input.Video)
		if id == "" {
			return nil, nil, errors.New("invalid video ID or URL")
		}

		key := engine.CacheKey("video_info", id)
		out, err := toolutil.Cached(ctx, "video_info", key, func() (*youtube.VideoInfo, error) {
			info, err := youtube.GetVideoInfo(ctx, id)
			if err == nil {
				return info, nil
			}
			slog.Warn("video_info: player endpoint failed, trying oembed",
				slog.String("video_id", id), slog.Any("error", err))
			return youtube.GetVideoInfoOEmbed(ctx, id)
		})
		if err != nil {
			slog.Warn("video_info failed", slog.String("video_id", id), slog.Any("error", err))
			return nil, &youtube.VideoInfo{VideoID: id, Thumbnails: youtube.Thumbnails(id), Error: err.Error()}, nil
		}

		engine.RecordLookup(ctx, "video_info", id, 1)
		return nil, out, nil
	})
}

func registerRelatedVideos(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "related_videos",
		Description: "Get the videos YouTube recommends next to a given video. Returns normalized video records from the watch-next sidebar.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input relatedVideosInput) (*mcp.CallToolResult, *youtube.RelatedVideos, error) {
		if input.Video == "" {
			return nil, nil, errors.New("video is required")
		}
		id := youtube.ExtractVideoID(input.Video)
		if id == "" {
			return nil, nil, errors.New("invalid video ID or URL")
		}
		limit := toolutil.ClampLimit(input.MaxResults, 10, 50)

		key := engine.CacheKey("related_videos", id, strconv.Itoa(limit))
		out, err := toolutil.Cached(ctx, "related_videos", key, func() (*youtube.RelatedVideos, error) {
			return youtube.GetRelatedVideos(ctx, id, limit)
		})
		if err != nil {
			slog.Warn("related_videos failed", slog.String("video_id", id), slog.Any("error", err))
			return nil, &youtube.RelatedVideos{VideoID: id, Results: []youtube.Video{}, Error: err.Error()}, nil
		}

		engine.RecordLookup(ctx, "related_videos", id, out.ResultsCount)
		return nil, out, nil
	})
}
