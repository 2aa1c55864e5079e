package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	FetchTimeout         time.Duration
	MaxBodyBytes         int64   // per-response read limit; 0 = default
	RequestsPerSecond    float64 // politeness limiter across upstream fetches; 0 = unlimited
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HistoryPath          string         // sqlite lookup history; empty = disabled
	HTTPClient           *http.Client   // nil = default scraping client
	BrowserClient        *BrowserClient // nil = plain HTTP client only
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
	initLimiter(c.RequestsPerSecond)
}
