package youtube

import (
	"context"
	"log/slog"
)

// Total page ceilings, counting the first page. Safety bounds against
// runaway continuation chains.
const (
	searchPageCeiling   = 10
	playlistPageCeiling = 20
)

// page is one unit of pagination: the records extracted from a response plus
// the token leading to the next page. An empty token means exhausted.
type page struct {
	videos []Video
	token  string
}

// fetchPageFunc fetches and parses the page behind a continuation token.
type fetchPageFunc func(ctx context.Context, token string) (page, error)

// collectPages drives pagination starting from an already parsed first page.
// It stops when the quota is met, the token runs out, the total page ceiling
// is reached, or a continuation fetch fails or comes back empty. Collected
// records are always kept; a mid-pagination failure is partial success, not
// an error.
func collectPages(ctx context.Context, first page, fetch fetchPageFunc, maxResults, pageCeiling int) ([]Video, int) {
	all := append([]Video(nil), first.videos...)
	if len(all) > maxResults {
		all = all[:maxResults]
	}
	token := first.token
	pages := 1

	for token != "" && len(all) < maxResults && pages < pageCeiling {
		next, err := fetch(ctx, token)
		if err != nil {
			slog.Warn("paginate: continuation fetch error", slog.Any("error", err))
			break
		}
		if len(next.videos) == 0 {
			break
		}
		if remaining := maxResults - len(all); len(next.videos) > remaining {
			next.videos = next.videos[:remaining]
		}
		all = append(all, next.videos...)
		token = next.token
		pages++
		slog.Debug("paginate: page collected",
			slog.Int("page", pages), slog.Int("total", len(all)))
	}

	return all, pages
}
