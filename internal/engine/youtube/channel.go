package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tn3w/ytbpy/internal/engine"
	"github.com/tn3w/ytbpy/internal/engine/ytree"
)

var handleRE = regexp.MustCompile(`@([a-zA-Z0-9_.-]+)`)

// GetChannelInfo fetches a channel page and extracts its metadata through
// the header fallback cascade, optionally with its recent videos.
// Input may be a UC… ID, an @handle, a legacy username, or a full URL.
func GetChannelInfo(ctx context.Context, input string, includeVideos bool, maxVideos int) (*ChannelInfo, error) {
	engine.IncrChannelRequests()
	if input == "" {
		return nil, fmt.Errorf("no channel input provided")
	}
	if maxVideos <= 0 {
		maxVideos = 10
	}

	pageURL := channelPageURL(input)
	html, err := engine.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("channel page %s: %w", pageURL, err)
	}
	root, err := ExtractInitialData(html)
	if err != nil {
		return nil, fmt.Errorf("channel data: %w", err)
	}

	info := &ChannelInfo{ChannelID: ChannelIDFromInput(input)}
	if info.ChannelID == "" {
		// Recover the ID from the page itself for handle/username inputs.
		info.ChannelID = root.Get("header", "c4TabbedHeaderRenderer", "channelId").Str()
		if info.ChannelID == "" {
			info.ChannelID = root.Get("metadata", "channelMetadataRenderer", "externalId").Str()
		}
	}
	if info.ChannelID != "" {
		info.ChannelURL = ChannelURL(info.ChannelID)
	} else {
		info.ChannelURL = pageURL
	}

	applyChannelHeader(info, root)

	if includeVideos {
		videos := channelListing(root, maxVideos)
		info.Videos = videos
		info.VideosCount = len(videos)
	}
	return info, nil
}

// GetChannelVideos returns just the videos envelope of a channel lookup.
func GetChannelVideos(ctx context.Context, input string, maxResults int) (*ChannelVideos, error) {
	info, err := GetChannelInfo(ctx, input, true, maxResults)
	if err != nil {
		return nil, err
	}
	return &ChannelVideos{
		ChannelID:    info.ChannelID,
		ChannelTitle: info.Title,
		VideosCount:  info.VideosCount,
		Videos:       info.Videos,
	}, nil
}

// applyChannelHeader merges channel metadata across the alternative header
// shapes in priority order: pageHeaderViewModel, c4TabbedHeaderRenderer,
// channelMetadataRenderer (+ microformat), then the About tab. A field set
// by a higher tier is never overwritten, except the few description/snippet
// interactions the shapes themselves force.
func applyChannelHeader(info *ChannelInfo, root ytree.Node) {
	pageHeader := root.Get("header", "pageHeaderRenderer")
	c4 := root.Get("header", "c4TabbedHeaderRenderer")
	channelMeta := root.Get("metadata", "channelMetadataRenderer")
	microformat := root.Get("microformat", "microformatDataRenderer")

	// Description has its own priority chain, seeded before the tiers.
	if desc := channelMeta.Key("description").Str(); desc != "" {
		info.Description = desc
	} else if desc := microformat.Key("description").Str(); desc != "" {
		info.Description = desc
	}

	if pageHeader.Exists() {
		applyPageHeaderViewModel(info, pageHeader)
	}
	if c4.Exists() && info.Title == "" {
		applyC4Header(info, c4)
	}
	if channelMeta.Exists() {
		applyChannelMetadata(info, channelMeta)
	}
	applyAboutTab(info, root)

	if info.Description != "" && info.DescriptionSnippet == "" {
		info.DescriptionSnippet = snippetOf(info.Description)
	}
}

// applyPageHeaderViewModel reads the view-model header shape.
func applyPageHeaderViewModel(info *ChannelInfo, pageHeader ytree.Node) {
	vm := pageHeader.Get("content", "pageHeaderViewModel")

	if title := dynamicText(vm.Get("title", "dynamicTextViewModel")); title != "" {
		info.Title = title
	} else {
		info.Title = pageHeader.Key("pageTitle").Str()
	}

	descVM := vm.Get("description", "descriptionPreviewViewModel")
	if preview := descVM.Get("description", "content").Str(); preview != "" {
		if info.Description == "" {
			info.Description = preview
		}
		info.DescriptionSnippet = preview
	}

	avatarSources := vm.Get("image", "decoratedAvatarViewModel",
		"avatar", "avatarViewModel", "image", "sources")
	if url := lastSourceURL(avatarSources); url != "" {
		info.LogoURL = url
	}
	bannerSources := vm.Get("banner", "imageBannerViewModel", "image", "sources")
	if url := lastSourceURL(bannerSources); url != "" {
		info.BannerURL = url
	}

	rows := vm.Get("metadata", "contentMetadataViewModel", "metadataRows")
	for _, row := range rows.Arr() {
		rowVM := row.Key("metadataRowViewModel")
		if !rowVM.Exists() {
			continue
		}
		title := strings.ToLower(extractText(rowVM.Key("title")))
		content := extractText(rowVM.Key("content"))
		if content == "" {
			continue
		}
		switch {
		case strings.Contains(title, "subscriber"), strings.Contains(title, "sub"):
			info.SubscriberCountText = content
			info.SubscriberCountApprox = int64Ptr(ParseApproxCount(content))
		case strings.Contains(title, "video"):
			if n, ok := ParsePlainCount(content); ok {
				info.VideoCount = int64Ptr(n)
			}
		case strings.Contains(title, "view"):
			if n, ok := ParsePlainCount(content); ok {
				info.ViewCount = int64Ptr(n)
			}
		case strings.Contains(title, "join"):
			info.JoinedDate = content
		case strings.Contains(title, "location"), strings.Contains(title, "country"):
			info.Location = content
		}
	}

	attribution := extractText(vm.Get("attribution", "attributionViewModel", "text"))
	if m := handleRE.FindStringSubmatch(attribution); m != nil {
		info.HandleName = m[1]
		info.Handle = "@" + m[1]
		info.VanityURL = "https://www.youtube.com/@" + m[1]
	}
}

// applyC4Header reads the legacy tabbed header shape.
func applyC4Header(info *ChannelInfo, c4 ytree.Node) {
	info.Title = c4.Key("title").Str()

	if vanity := c4.Get("navigationEndpoint", "browseEndpoint", "canonicalBaseUrl").Str(); vanity != "" {
		info.Handle = vanity
		if name, ok := strings.CutPrefix(vanity, "/@"); ok {
			info.HandleName = name
			info.VanityURL = "https://www.youtube.com" + vanity
		}
	}

	if snippet := extractText(c4.Key("descriptionSnippet")); snippet != "" {
		info.DescriptionSnippet = snippet
		if info.Description == "" {
			info.Description = snippet
		}
	}

	if info.LogoURL == "" {
		info.LogoURL = lastSourceURL(c4.Get("avatar", "thumbnails"))
	}
	if info.BannerURL == "" {
		info.BannerURL = lastSourceURL(c4.Get("banner", "thumbnails"))
	}

	if info.SubscriberCountText == "" {
		if text := extractText(c4.Key("subscriberCountText")); text != "" {
			info.SubscriberCountText = text
			info.SubscriberCountApprox = int64Ptr(ParseApproxCount(text))
		}

		rows := c4.Get("metadataRowContainer", "metadataRowContainerRenderer", "rows")
		for _, row := range rows.Arr() {
			renderer := row.Key("metadataRowRenderer")
			title := strings.ToLower(extractText(renderer.Key("title")))
			content := extractText(renderer.Get("contents", 0))
			if content == "" {
				continue
			}
			switch {
			case strings.Contains(title, "video") && info.VideoCount == nil:
				if n, ok := ParsePlainCount(content); ok {
					info.VideoCount = int64Ptr(n)
				}
			case strings.Contains(title, "view") && info.ViewCount == nil:
				if n, ok := ParsePlainCount(content); ok {
					info.ViewCount = int64Ptr(n)
				}
			case strings.Contains(title, "join") && info.JoinedDate == "":
				info.JoinedDate = content
			case strings.Contains(title, "location") && info.Location == "":
				info.Location = content
			}
		}
	}
}

// applyChannelMetadata reads the channelMetadataRenderer shape.
func applyChannelMetadata(info *ChannelInfo, meta ytree.Node) {
	if info.Title == "" {
		info.Title = meta.Key("title").Str()
	}
	if info.LogoURL == "" {
		info.LogoURL = lastSourceURL(meta.Get("avatar", "thumbnails"))
	}
	if vanity := meta.Key("vanityChannelUrl").Str(); vanity != "" && info.VanityURL == "" {
		info.VanityURL = vanity
		if _, name, ok := strings.Cut(vanity, "/@"); ok {
			info.HandleName = name
			info.Handle = "@" + name
		}
	}
	if info.ChannelID == "" {
		info.ChannelID = meta.Key("externalId").Str()
	}
}

// applyAboutTab reads the About tab's channelAboutFullMetadataRenderer as
// the lowest-priority source.
func applyAboutTab(info *ChannelInfo, root ytree.Node) {
	tabs := root.Get("contents", "twoColumnBrowseResultsRenderer", "tabs")
	for _, tab := range tabs.Arr() {
		tr := tab.Key("tabRenderer")
		if tr.Key("title").Str() != "About" {
			continue
		}
		for _, section := range tr.Get("content", "sectionListRenderer", "contents").Arr() {
			for _, item := range section.Get("itemSectionRenderer", "contents").Arr() {
				about := item.Key("channelAboutFullMetadataRenderer")
				if !about.Exists() {
					continue
				}
				applyAboutRenderer(info, about)
			}
		}
	}
}

func applyAboutRenderer(info *ChannelInfo, about ytree.Node) {
	if info.Description == "" {
		info.Description = about.Get("description", "simpleText").Str()
	}
	if info.VideoCount == nil {
		if n, ok := ParsePlainCount(extractText(about.Key("videoCountText"))); ok {
			info.VideoCount = int64Ptr(n)
		}
	}
	if info.ViewCount == nil {
		if n, ok := ParsePlainCount(extractText(about.Key("viewCountText"))); ok {
			info.ViewCount = int64Ptr(n)
		}
	}
	if info.JoinedDate == "" {
		info.JoinedDate = extractText(about.Key("joinedDateText"))
	}
	if info.Location == "" {
		info.Location = extractText(about.Key("country"))
	}

	var links []ExternalLink
	for _, link := range about.Key("primaryLinks").Arr() {
		title := extractText(link.Key("title"))
		url := link.Get("navigationEndpoint", "urlEndpoint", "url").Str()
		if title != "" && url != "" {
			links = append(links, ExternalLink{Title: title, URL: url})
		}
	}
	if links != nil {
		info.ExternalLinks = links
	}

	if info.VanityURL == "" {
		if id := about.Key("channelId").Str(); id != "" {
			info.ChannelID = id
			for _, link := range about.Key("primaryLinks").Arr() {
				url := link.Get("navigationEndpoint", "urlEndpoint", "url").Str()
				if strings.Contains(url, "youtube.com/") && strings.Contains(url, "/@") {
					info.VanityURL = url
					_, name, _ := strings.Cut(url, "/@")
					name, _, _ = strings.Cut(name, "?")
					info.HandleName = name
					info.Handle = "@" + name
					break
				}
			}
		}
	}
}

// snippetOf truncates a description to 150 runes with a trailing ellipsis.
func snippetOf(description string) string {
	runes := []rune(description)
	if len(runes) > 150 {
		return string(runes[:150]) + "..."
	}
	return description
}

// channelListing extracts the channel's recent videos, trying the
// alternative page locations in order and stopping at the first that yields
// anything: Videos-tab grid, Home-tab shelf named for videos/uploads, then
// the secondary contents shelf.
func channelListing(root ytree.Node, maxVideos int) []Video {
	tabs := root.Get("contents", "twoColumnBrowseResultsRenderer", "tabs")

	if videos := videosTabGrid(tabs, maxVideos); len(videos) > 0 {
		return videos
	}
	if videos := homeTabShelf(tabs, maxVideos); len(videos) > 0 {
		return videos
	}
	return secondaryShelf(root, maxVideos)
}

func videosTabGrid(tabs ytree.Node, maxVideos int) []Video {
	var videos []Video
	for _, tab := range tabs.Arr() {
		tr := tab.Key("tabRenderer")
		if tr.Key("title").Str() != "Videos" {
			continue
		}
		for _, section := range tr.Get("content", "sectionListRenderer", "contents").Arr() {
			for _, item := range section.Get("itemSectionRenderer", "contents").Arr() {
				items := item.Get("gridRenderer", "items")
				videos = append(videos, gridVideos(items, maxVideos-len(videos))...)
			}
		}
	}
	return videos
}

func homeTabShelf(tabs ytree.Node, maxVideos int) []Video {
	var videos []Video
	for _, tab := range tabs.Arr() {
		tr := tab.Key("tabRenderer")
		if tr.Key("title").Str() != "Home" {
			continue
		}
		for _, section := range tr.Get("content", "sectionListRenderer", "contents").Arr() {
			for _, item := range section.Get("itemSectionRenderer", "contents").Arr() {
				shelf := item.Key("shelfRenderer")
				if !shelf.Exists() {
					continue
				}
				title := extractText(shelf.Key("title"))
				if !strings.Contains(title, "Video") &&
					!strings.Contains(title, "Upload") &&
					!strings.Contains(title, "Recent") {
					continue
				}
				items := shelf.Get("content", "horizontalListRenderer", "items")
				videos = append(videos, gridVideos(items, maxVideos-len(videos))...)
			}
		}
	}
	return videos
}

func secondaryShelf(root ytree.Node, maxVideos int) []Video {
	var videos []Video
	sections := root.Get("contents", "twoColumnBrowseResultsRenderer",
		"secondaryContents", "sectionListRenderer", "contents")
	for _, section := range sections.Arr() {
		for _, item := range section.Get("itemSectionRenderer", "contents").Arr() {
			items := item.Get("shelfRenderer", "content", "horizontalListRenderer", "items")
			videos = append(videos, gridVideos(items, maxVideos-len(videos))...)
		}
	}
	return videos
}

// gridVideos extracts up to limit gridVideoRenderer records from an items
// array.
func gridVideos(items ytree.Node, limit int) []Video {
	var videos []Video
	for _, item := range items.Arr() {
		if len(videos) >= limit {
			break
		}
		if v := videoFromGridRenderer(item.Key("gridVideoRenderer")); v != nil {
			videos = append(videos, *v)
		}
	}
	return videos
}
