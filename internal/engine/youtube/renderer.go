package youtube

import (
	"regexp"
	"strings"
	"time"

	"github.com/tn3w/ytbpy/internal/engine/ytree"
)

var (
	metaViewsRE    = regexp.MustCompile(`(\d+(?:,\d+)*)\s+views?`)
	metaRelativeRE = regexp.MustCompile(`(\d+\s+\w+\s+ago)`)
)

// newVideo seeds a record from the mandatory videoId. Returns nil when the
// renderer has no id; such renderers are dropped, never emitted empty.
func newVideo(r ytree.Node) *Video {
	id := r.Key("videoId").Str()
	if id == "" {
		return nil
	}
	return &Video{
		VideoID:    id,
		URL:        WatchURL(id),
		Thumbnails: Thumbnails(id),
	}
}

// applyByline fills channel attribution from a runs-style byline node
// (ownerText, shortBylineText, longBylineText).
func applyByline(v *Video, byline ytree.Node) {
	run := firstRun(byline)
	if !run.Exists() {
		return
	}
	v.ChannelName = run.Key("text").Str()
	if id := run.Get("navigationEndpoint", "browseEndpoint", "browseId").Str(); id != "" {
		v.ChannelID = id
		v.ChannelURL = ChannelURL(id)
	}
}

// applyDuration fills duration text and parsed seconds from a text container.
func applyDuration(v *Video, lengthText ytree.Node) {
	text := extractText(lengthText)
	if text == "" {
		return
	}
	v.DurationText = text
	if secs, err := ParseDurationSeconds(text); err == nil {
		v.DurationSeconds = intPtr(secs)
	}
}

// applyBadges appends metadataBadgeRenderer labels and marks live when any
// label mentions LIVE. Labels accumulate across badge sources, not deduped.
func applyBadges(v *Video, badges ytree.Node) {
	for _, badge := range badges.Arr() {
		label := badge.Get("metadataBadgeRenderer", "label").Str()
		if label == "" {
			continue
		}
		v.Badges = append(v.Badges, label)
		if strings.Contains(label, "LIVE") {
			v.IsLive = true
		}
	}
}

// applyOverlays reads thumbnailOverlays: the time-status overlay carries the
// duration and the LIVE/UPCOMING style, toggle and now-playing overlays
// contribute extra badge labels.
func applyOverlays(v *Video, overlays ytree.Node) {
	for _, overlay := range overlays.Arr() {
		if ts := overlay.Key("thumbnailOverlayTimeStatusRenderer"); ts.Exists() {
			if v.DurationText == "" {
				applyDuration(v, ts.Key("text"))
			}
			switch ts.Key("style").Str() {
			case "LIVE":
				v.IsLive = true
			case "UPCOMING":
				v.IsUpcoming = true
			}
		}
		for _, key := range []string{"thumbnailOverlayToggleButtonRenderer", "thumbnailOverlayNowPlayingRenderer"} {
			if label := overlay.Get(key, "label").Str(); label != "" {
				v.Badges = append(v.Badges, label)
			}
		}
	}
}

// videoFromSearchRenderer extracts a record from a search-results
// videoRenderer node.
func videoFromSearchRenderer(r ytree.Node) *Video {
	v := newVideo(r)
	if v == nil {
		return nil
	}

	v.Title = extractText(r.Key("title"))

	if text := r.Get("viewCountText", "simpleText").Str(); text != "" {
		v.ViewCountText = text
		if strings.HasPrefix(strings.ToLower(text), "no ") {
			v.Views = int64Ptr(0)
		} else if count, ok := ParsePlainCount(text); ok {
			v.Views = int64Ptr(count)
		}
	}

	if published := r.Get("publishedTimeText", "simpleText").Str(); published != "" {
		v.PublishedTime = published
	}

	applyByline(v, r.Key("ownerText"))
	applyDuration(v, r.Key("lengthText"))
	applyBadges(v, r.Key("badges"))
	applyOverlays(v, r.Key("thumbnailOverlays"))

	if snippet := r.Get("detailedMetadataSnippets", 0, "snippetText"); snippet.Exists() {
		v.DescriptionSnippet = extractText(snippet)
	}
	if url := r.Get("richThumbnail", "movingThumbnailRenderer", "movingThumbnailDetails", "thumbnails", 0, "url").Str(); url != "" {
		v.RichThumbnailURL = url
	}

	return v
}

// videoFromGridRenderer extracts a record from a channel-page
// gridVideoRenderer node.
func videoFromGridRenderer(r ytree.Node) *Video {
	v := newVideo(r)
	if v == nil {
		return nil
	}

	v.Title = extractText(r.Key("title"))
	applyOverlays(v, r.Key("thumbnailOverlays"))

	if published := extractText(r.Key("publishedTimeText")); published != "" {
		v.PublishedTime = published
		if approx := ParseRelativeTime(published, time.Now()); approx != "" {
			v.ApproxUploadDate = approx
		}
	}

	if text := extractText(r.Key("viewCountText")); text != "" {
		v.ViewCountText = text
		if strings.Contains(strings.ToLower(text), "view") {
			if strings.HasPrefix(strings.ToLower(text), "no ") {
				v.Views = int64Ptr(0)
			} else {
				v.Views = int64Ptr(ParseApproxCount(text))
			}
		}
	}

	if snippet := r.Key("descriptionSnippet"); snippet.Exists() {
		v.DescriptionSnippet = extractText(snippet)
	}

	applyBadges(v, r.Key("badges"))

	for _, badge := range r.Key("ownerBadges").Arr() {
		if badge.Get("metadataBadgeRenderer", "style").Str() == "BADGE_STYLE_TYPE_VERIFIED" {
			v.ChannelVerified = true
		}
	}

	return v
}

// videoFromPlaylistRenderer extracts a record from a playlistVideoRenderer
// node. Views and relative dates come from a scan over the videoInfo, byline
// and accessibility meta texts, first match wins.
func videoFromPlaylistRenderer(r ytree.Node) *Video {
	v := newVideo(r)
	if v == nil {
		return nil
	}

	if idx := r.Get("index", "simpleText").Str(); idx != "" {
		if n, ok := ParsePlainCount(idx); ok {
			v.Index = intPtr(int(n))
		}
	}

	v.Title = extractText(r.Key("title"))
	applyDuration(v, r.Key("lengthText"))

	var meta []string
	if text := extractText(r.Key("videoInfo")); text != "" {
		meta = append(meta, text)
	}
	if text := r.Get("byline", "simpleText").Str(); text != "" {
		meta = append(meta, text)
	}
	if label := r.Get("accessibility", "accessibilityData", "label").Str(); label != "" {
		meta = append(meta, label)
	}
	for _, text := range meta {
		if m := metaViewsRE.FindStringSubmatch(text); m != nil && v.Views == nil {
			if count, ok := ParsePlainCount(m[1]); ok {
				v.Views = int64Ptr(count)
			}
		}
		if m := metaRelativeRE.FindStringSubmatch(text); m != nil && v.PublishedDate == "" {
			v.PublishedDate = m[1]
		}
	}

	if snippet := r.Key("descriptionSnippet"); snippet.Exists() {
		v.DescriptionSnippet = extractText(snippet)
	}

	applyBadges(v, r.Key("badges"))
	applyByline(v, r.Key("shortBylineText"))

	return v
}

// videoFromCompactRenderer extracts a record from a watch-page
// compactVideoRenderer node (related videos).
func videoFromCompactRenderer(r ytree.Node) *Video {
	v := newVideo(r)
	if v == nil {
		return nil
	}

	v.Title = extractText(r.Key("title"))
	applyDuration(v, r.Key("lengthText"))
	applyByline(v, r.Key("longBylineText"))

	if text := r.Get("viewCountText", "simpleText").Str(); text != "" {
		v.ViewCountText = text
		if count, ok := ParseViewCountText(text); ok {
			v.Views = int64Ptr(count)
		}
	}

	if published := extractText(r.Key("publishedTimeText")); published != "" {
		v.PublishedTime = published
	}

	applyBadges(v, r.Key("badges"))
	applyOverlays(v, r.Key("thumbnailOverlays"))

	return v
}
