// ytbpy — YouTube metadata lookup MCP server.
//
// Exposes the lookup tools search_videos, video_info, related_videos,
// channel_info, channel_videos, playlist_info, plus a recent_lookups history
// listing. Extraction runs against the
// renderer trees embedded in public pages and the InnerTube web API; no
// official API key or authentication is required.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tn3w/ytbpy/internal/engine"
	"github.com/tn3w/ytbpy/internal/ytserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting ytbpy",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ytbpy",
		Version: version,
	}, nil)

	ytserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 7))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "ytbpy",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 15*time.Second),
		MaxBodyBytes:         int64(env.Int("MAX_BODY_BYTES", 0)),
		RequestsPerSecond:    env.Float("REQUESTS_PER_SECOND", 4),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HistoryPath:          env.Str("HISTORY_PATH", ""),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	bc, err := engine.NewBrowserClient()
	if err != nil {
		slog.Warn("browser client init failed, plain HTTP only", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("browser client initialized")
	}

	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
