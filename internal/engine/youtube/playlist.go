package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tn3w/ytbpy/internal/engine"
	"github.com/tn3w/ytbpy/internal/engine/ytree"
)

// GetPlaylistInfo fetches a playlist's metadata and videos, following
// continuations until maxResults records are collected or the page ceiling
// is hit.
func GetPlaylistInfo(ctx context.Context, urlOrID string, maxResults int) (*PlaylistInfo, error) {
	engine.IncrPlaylistRequests()
	id := ExtractPlaylistID(urlOrID)
	if id == "" {
		return nil, errors.New("invalid playlist ID or URL")
	}
	if maxResults <= 0 {
		maxResults = 50
	}

	playlistURL := "https://www.youtube.com/playlist?list=" + id
	html, err := engine.FetchPage(ctx, playlistURL)
	if err != nil {
		return nil, fmt.Errorf("playlist page: %w", err)
	}
	root, err := ExtractInitialData(html)
	if err != nil {
		return nil, fmt.Errorf("playlist data: %w", err)
	}

	info := &PlaylistInfo{PlaylistID: id, PlaylistURL: playlistURL}
	applyPlaylistMetadata(info, root)

	videos, pages := collectPages(ctx, playlistPage(root), fetchPlaylistContinuation, maxResults, playlistPageCeiling)
	info.Videos = videos
	info.VideosCount = len(videos)
	info.PagesFetched = pages
	if info.VideoCount != nil && *info.VideoCount > int64(len(videos)) {
		info.TotalVideos = info.VideoCount
	}
	return info, nil
}

// applyPlaylistMetadata fills title, stats, description, privacy and owner
// from the sidebar, with the header as description fallback. Description
// always ends up present, defaulting to empty.
func applyPlaylistMetadata(info *PlaylistInfo, root ytree.Node) {
	sidebar := root.Get("sidebar", "playlistSidebarRenderer")
	primary := sidebar.Get("items", 0, "playlistSidebarPrimaryInfoRenderer")

	info.Title = extractText(primary.Key("title"))

	for _, stat := range primary.Key("stats").Arr() {
		switch {
		case stat.Has("runs"):
			text := extractText(stat)
			if strings.Contains(strings.ToLower(text), "video") {
				if n, ok := ParsePlainCount(text); ok {
					info.VideoCount = int64Ptr(n)
				}
			}
		case stat.Has("simpleText"):
			text := stat.Key("simpleText").Str()
			lower := strings.ToLower(text)
			switch {
			case strings.Contains(lower, "view"):
				if n, ok := ParsePlainCount(text); ok {
					info.ViewCount = int64Ptr(n)
				}
			case strings.Contains(lower, "updated"), strings.Contains(lower, "last"):
				info.LastUpdated = text
			}
		}
	}

	info.Description = extractText(primary.Key("description"))
	if info.Description == "" {
		info.Description = extractText(root.Get("header", "playlistHeaderRenderer", "description"))
	}

	info.Privacy = primary.Get("privacyText", "simpleText").Str()

	owner := sidebar.Get("items", 1, "playlistSidebarSecondaryInfoRenderer",
		"videoOwner", "videoOwnerRenderer", "title")
	if run := firstRun(owner); run.Exists() {
		info.Owner = run.Key("text").Str()
		if id := run.Get("navigationEndpoint", "browseEndpoint", "browseId").Str(); id != "" {
			info.OwnerID = id
			info.OwnerURL = ChannelURL(id)
		}
	}
}

// playlistPage extracts the records and continuation token of a playlist
// browse tree.
func playlistPage(root ytree.Node) page {
	var p page
	for _, item := range playlistContents(root).Arr() {
		if v := videoFromPlaylistRenderer(item.Key("playlistVideoRenderer")); v != nil {
			p.videos = append(p.videos, *v)
		}
	}
	p.token = playlistContinuation(root)
	return p
}

// fetchPlaylistContinuation fetches and parses one continuation page of
// playlist videos.
func fetchPlaylistContinuation(ctx context.Context, token string) (page, error) {
	root, err := fetchContinuation(ctx, ytBrowseURL, token)
	if err != nil {
		return page{}, err
	}

	var p page
	items := appendedItems(root)
	for _, item := range items.Arr() {
		if v := videoFromPlaylistRenderer(item.Key("playlistVideoRenderer")); v != nil {
			p.videos = append(p.videos, *v)
		}
	}
	p.token = tokenFromItems(items)
	return p, nil
}
