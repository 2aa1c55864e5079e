package youtube

import (
	"strings"

	"github.com/tn3w/ytbpy/internal/engine/ytree"
)

// Continuation tokens are opaque strings hidden in several alternative
// places depending on page type and rollout cohort. The probes below try
// every known shape in a fixed priority order; an empty result means
// pagination is exhausted, never an error.

// tokenFromEndpoint probes a continuationEndpoint's sub-shapes in order:
// command executor list, direct continuationCommand, URL-embedded fragment,
// bare token, browseEndpoint params.
func tokenFromEndpoint(ep ytree.Node) string {
	for _, cmd := range ep.Get("commandExecutorCommand", "commands").Arr() {
		if tok := cmd.Get("continuationCommand", "token").Str(); tok != "" {
			return tok
		}
	}
	if tok := ep.Get("continuationCommand", "token").Str(); tok != "" {
		return tok
	}
	if url := ep.Get("commandMetadata", "webCommandMetadata", "url").Str(); url != "" {
		if _, frag, ok := strings.Cut(url, "&continuation="); ok {
			return frag
		}
	}
	if tok := ep.Key("token").Str(); tok != "" {
		return tok
	}
	return ep.Get("browseEndpoint", "params").Str()
}

// tokenFromItem reads a continuationItemRenderer wrapper, preferring the
// direct continuation field over the endpoint probes.
func tokenFromItem(item ytree.Node) string {
	cr := item.Key("continuationItemRenderer")
	if !cr.Exists() {
		return ""
	}
	if tok := cr.Key("continuation").Str(); tok != "" {
		return tok
	}
	return tokenFromEndpoint(cr.Key("continuationEndpoint"))
}

// tokenFromItems scans a content list for a continuation sibling.
func tokenFromItems(items ytree.Node) string {
	for _, item := range items.Arr() {
		if tok := tokenFromItem(item); tok != "" {
			return tok
		}
	}
	return ""
}

// searchContinuation locates the next-page token in a search results tree:
// first as a direct sibling of the section list, then nested one level
// inside an item section.
func searchContinuation(root ytree.Node) string {
	contents := searchContents(root)
	if tok := tokenFromItems(contents); tok != "" {
		return tok
	}
	for _, content := range contents.Arr() {
		if tok := tokenFromItems(content.Get("itemSectionRenderer", "contents")); tok != "" {
			return tok
		}
	}
	return ""
}

// searchContents returns the section list of a search results tree.
func searchContents(root ytree.Node) ytree.Node {
	return root.Get("contents", "twoColumnSearchResultsRenderer",
		"primaryContents", "sectionListRenderer", "contents")
}

// playlistContents returns the video list of a playlist browse tree.
func playlistContents(root ytree.Node) ytree.Node {
	return root.Get("contents", "twoColumnBrowseResultsRenderer",
		"tabs", 0, "tabRenderer", "content", "sectionListRenderer",
		"contents", 0, "itemSectionRenderer", "contents", 0,
		"playlistVideoListRenderer", "contents")
}

// playlistContinuation locates the next-page token in a playlist browse
// tree: the video list itself, then the header's playlistActions menu, then
// the secondary contents column.
func playlistContinuation(root ytree.Node) string {
	if tok := tokenFromItems(playlistContents(root)); tok != "" {
		return tok
	}

	actions := root.Get("header", "playlistHeaderRenderer", "playlistActions")
	for _, action := range actions.Arr() {
		tok := action.Get("menuAction", "menuServiceItemRenderer",
			"serviceEndpoint", "continuationCommand", "token").Str()
		if tok != "" {
			return tok
		}
	}

	return root.Get("contents", "twoColumnBrowseResultsRenderer",
		"secondaryContents", "secondaryContents", "continuationItemRenderer",
		"continuationEndpoint", "continuationCommand", "token").Str()
}

// appendedItems returns the continuationItems of an incremental append
// envelope, checking both action key spellings the API uses.
func appendedItems(root ytree.Node) ytree.Node {
	for _, key := range []string{"onResponseReceivedActions", "onResponseReceivedCommands"} {
		items := root.Get(key, 0, "appendContinuationItemsAction", "continuationItems")
		if items.Exists() {
			return items
		}
	}
	return ytree.Node{}
}
