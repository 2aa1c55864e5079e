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

type playlistInfoInput struct {
	Playlist   string `json:"playlist" jsonschema:"Playlist ID or playlist URL"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum videos to return (default 50, capped at 500)"`
}

func registerPlaylistInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "playlist_info",
		Description: "Get metadata and videos for a YouTube playlist: title, description, video/view counts, privacy, owner, and the video list. Follows continuation pages until max_results videos are collected.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input playlistInfoInput) (*mcp.CallToolResult, *youtube.PlaylistInfo, error) {
		playlist := strings.TrimSpace(input.Playlist)
		if playlist == "" {
			return nil, nil, errors.New("playlist is required")
		}
		id := youtube.ExtractPlaylistID(playlist)
		if id == "" {
			return nil, nil, errors.New("invalid playlist ID or URL")
		}
		limit := toolutil.ClampLimit(input.MaxResults, 50, 500)

		key := engine.CacheKey("playlist_info", id, strconv.Itoa(limit))
		out, err := toolutil.Cached(ctx, "playlist_info", key, func() (*youtube.PlaylistInfo, error) {
			return youtube.GetPlaylistInfo(ctx, id, limit)
		})
		if err != nil {
			slog.Warn("playlist_info failed", slog.String("playlist_id", id), slog.Any("error", err))
			return nil, &youtube.PlaylistInfo{PlaylistID: id, Videos: []youtube.Video{}, Error: err.Error()}, nil
		}

		engine.RecordLookup(ctx, "playlist_info", id, out.VideosCount)
		return nil, out, nil
	})
}
