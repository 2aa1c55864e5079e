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

type channelInfoInput struct {
	Channel       string `json:"channel" jsonschema:"Channel ID (UC…), @handle, legacy username, or channel URL"`
	IncludeVideos bool   `json:"include_videos,omitempty" jsonschema:"Also list the channel's recent videos"`
	MaxVideos     int    `json:"max_videos,omitempty" jsonschema:"Maximum videos to list when include_videos is set (default 10, capped at 50)"`
}

type channelVideosInput struct {
	Channel    string `json:"channel" jsonschema:"Channel ID (UC…), @handle, legacy username, or channel URL"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum videos to return (default 10, capped at 50)"`
}

func registerChannelInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_info",
		Description: "Get metadata for a YouTube channel: title, description, subscriber/video/view counts, joined date, location, handle, avatar and banner URLs, external links, optionally recent videos. Accepts a channel ID, @handle, legacy username, or URL.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input channelInfoInput) (*mcp.CallToolResult, *youtube.ChannelInfo, error) {
		channel := strings.TrimSpace(input.Channel)
		if channel == "" {
			return nil, nil, errors.New("channel is required")
		}
		maxVideos := toolutil.ClampLimit(input.MaxVideos, 10, 50)

		key := engine.CacheKey("channel_info", channel,
			strconv.FormatBool(input.IncludeVideos), strconv.Itoa(maxVideos))
		out, err := toolutil.Cached(ctx, "channel_info", key, func() (*youtube.ChannelInfo, error) {
			return youtube.GetChannelInfo(ctx, channel, input.IncludeVideos, maxVideos)
		})
		if err != nil {
			slog.Warn("channel_info failed", slog.String("channel", channel), slog.Any("error", err))
			return nil, &youtube.ChannelInfo{Error: err.Error()}, nil
		}

		engine.RecordLookup(ctx, "channel_info", channel, out.VideosCount)
		return nil, out, nil
	})
}

func registerChannelVideos(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_videos",
		Description: "List a YouTube channel's recent videos as normalized records. Accepts a channel ID, @handle, legacy username, or URL.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input channelVideosInput) (*mcp.CallToolResult, *youtube.ChannelVideos, error) {
		channel := strings.TrimSpace(input.Channel)
		if channel == "" {
			return nil, nil, errors.New("channel is required")
		}
		limit := toolutil.ClampLimit(input.MaxResults, 10, 50)

		key := engine.CacheKey("channel_videos", channel, strconv.Itoa(limit))
		out, err := toolutil.Cached(ctx, "channel_videos", key, func() (*youtube.ChannelVideos, error) {
			return youtube.GetChannelVideos(ctx, channel, limit)
		})
		if err != nil {
			slog.Warn("channel_videos failed", slog.String("channel", channel), slog.Any("error", err))
			return nil, &youtube.ChannelVideos{Videos: []youtube.Video{}, Error: err.Error()}, nil
		}

		engine.RecordLookup(ctx, "channel_videos", channel, out.VideosCount)
		return nil, out, nil
	})
}
