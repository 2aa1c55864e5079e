// Package ytserver exposes the youtube lookup engine as MCP tools:
// search_videos, video_info, related_videos, channel_info, channel_videos,
// playlist_info, recent_lookups. Tools validate input, consult the result
// cache, invoke the extraction layer, and record the lookup history. Upstream
// failures past the input boundary come back as a structured error field, not
// a tool error, so clients always receive the output envelope.
package ytserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all video lookup tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerSearchVideos(server)
	registerVideoInfo(server)
	registerRelatedVideos(server)
	registerChannelInfo(server)
	registerChannelVideos(server)
	registerPlaylistInfo(server)
	registerRecentLookups(server)
}
