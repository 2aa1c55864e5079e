package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/tn3w/ytbpy/internal/engine"
	"github.com/tn3w/ytbpy/internal/engine/ytree"
)

// SearchVideos runs a video search and follows continuations until
// maxResults records are collected or the page ceiling is hit.
func SearchVideos(ctx context.Context, query string, maxResults int) (*SearchResult, error) {
	engine.IncrSearchRequests()
	if query == "" {
		return nil, errors.New("no search query provided")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	searchURL := "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
	html, err := engine.FetchPage(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("search page: %w", err)
	}
	root, err := ExtractInitialData(html)
	if err != nil {
		return nil, fmt.Errorf("search data: %w", err)
	}

	videos, pages := collectPages(ctx, searchPage(root), fetchSearchContinuation, maxResults, searchPageCeiling)

	return &SearchResult{
		Query:        query,
		ResultsCount: len(videos),
		PagesFetched: pages,
		Results:      videos,
	}, nil
}

// searchPage extracts the records and continuation token of a search
// results tree.
func searchPage(root ytree.Node) page {
	var p page
	for _, content := range searchContents(root).Arr() {
		for _, item := range content.Get("itemSectionRenderer", "contents").Arr() {
			if v := videoFromSearchRenderer(item.Key("videoRenderer")); v != nil {
				p.videos = append(p.videos, *v)
			}
		}
	}
	p.token = searchContinuation(root)
	return p
}

// fetchSearchContinuation fetches and parses one continuation page of
// search results.
func fetchSearchContinuation(ctx context.Context, token string) (page, error) {
	root, err := fetchContinuation(ctx, ytSearchURL, token)
	if err != nil {
		return page{}, err
	}

	var p page
	items := appendedItems(root)
	for _, item := range items.Arr() {
		for _, content := range item.Get("itemSectionRenderer", "contents").Arr() {
			if v := videoFromSearchRenderer(content.Key("videoRenderer")); v != nil {
				p.videos = append(p.videos, *v)
			}
		}
	}
	p.token = tokenFromItems(items)
	return p, nil
}
