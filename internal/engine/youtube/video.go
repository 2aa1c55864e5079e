package youtube

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/tn3w/ytbpy/internal/engine"
	"github.com/tn3w/ytbpy/internal/engine/ytree"
)

// GetVideoInfo fetches a video's full metadata from the player endpoint,
// merging videoDetails with the microformat renderer.
func GetVideoInfo(ctx context.Context, urlOrID string) (*VideoInfo, error) {
	engine.IncrVideoInfoRequests()
	id := ExtractVideoID(urlOrID)
	if id == "" {
		return nil, errors.New("invalid video ID or URL")
	}

	root, err := fetchPlayerEndpoint(ctx, ytPlayerURL, id)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", id, err)
	}

	info := &VideoInfo{VideoID: id, Thumbnails: Thumbnails(id)}
	applyVideoDetails(info, root.Key("videoDetails"))
	applyMicroformat(info, root.Get("microformat", "playerMicroformatRenderer"))
	info.Chapters = videoChapters(root)
	info.Formats = videoFormats(root.Get("streamingData", "formats"))
	return info, nil
}

// GetVideoInfoOEmbed fetches the reduced metadata the public oEmbed endpoint
// exposes. It needs no API interop, so it serves as the fallback when the
// player endpoint is blocked.
func GetVideoInfoOEmbed(ctx context.Context, urlOrID string) (*VideoInfo, error) {
	engine.IncrVideoInfoRequests()
	id := ExtractVideoID(urlOrID)
	if id == "" {
		return nil, errors.New("invalid video ID or URL")
	}

	oembedURL := "https://www.youtube.com/oembed?url=http://www.youtube.com/watch?v=" + id + "&format=json"
	body, err := engine.FetchPage(ctx, oembedURL)
	if err != nil {
		return nil, fmt.Errorf("oembed %s: %w", id, err)
	}
	root, err := ytree.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("oembed decode: %w", err)
	}

	return &VideoInfo{
		VideoID:    id,
		Thumbnails: Thumbnails(id),
		Title:      root.Key("title").Str(),
		AuthorName: root.Key("author_name").Str(),
		AuthorURL:  root.Key("author_url").Str(),
	}, nil
}

// GetRelatedVideos fetches the watch-next sidebar for a video and extracts
// its compact recommendations.
func GetRelatedVideos(ctx context.Context, urlOrID string, maxResults int) (*RelatedVideos, error) {
	engine.IncrRelatedRequests()
	id := ExtractVideoID(urlOrID)
	if id == "" {
		return nil, errors.New("invalid video ID or URL")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	root, err := fetchPlayerEndpoint(ctx, ytNextURL, id)
	if err != nil {
		return nil, fmt.Errorf("related %s: %w", id, err)
	}

	results := root.Get("contents", "twoColumnWatchNextResults",
		"secondaryResults", "secondaryResults", "results")
	var videos []Video
	for _, item := range results.Arr() {
		if len(videos) >= maxResults {
			break
		}
		if v := videoFromCompactRenderer(item.Key("compactVideoRenderer")); v != nil {
			videos = append(videos, *v)
		}
	}

	return &RelatedVideos{
		VideoID:      id,
		Results:      videos,
		ResultsCount: len(videos),
	}, nil
}

// applyVideoDetails merges the player response's videoDetails block.
func applyVideoDetails(info *VideoInfo, details ytree.Node) {
	if !details.Exists() {
		return
	}
	info.Title = details.Key("title").Str()
	info.Description = details.Key("shortDescription").Str()
	info.ChannelID = details.Key("channelId").Str()
	info.AuthorName = details.Key("author").Str()
	if info.ChannelID != "" {
		info.AuthorURL = ChannelURL(info.ChannelID)
	}
	info.IsLive = details.Key("isLiveContent").Bool()
	info.IsPrivate = details.Key("isPrivate").Bool()

	if secs, err := strconv.Atoi(details.Key("lengthSeconds").Str()); err == nil && secs > 0 {
		info.DurationSeconds = intPtr(secs)
		info.Duration = FormatSeconds(secs)
	}
	if views, err := strconv.ParseInt(details.Key("viewCount").Str(), 10, 64); err == nil {
		info.ViewsCount = int64Ptr(views)
	}
	for _, kw := range details.Key("keywords").Arr() {
		if s := kw.Str(); s != "" {
			info.Keywords = append(info.Keywords, s)
		}
	}
}

// applyMicroformat merges the playerMicroformatRenderer block. Dates carry
// both the raw text and the resolved epoch when the text parses.
func applyMicroformat(info *VideoInfo, micro ytree.Node) {
	if !micro.Exists() {
		return
	}
	if info.Title == "" {
		info.Title = extractText(micro.Key("title"))
	}
	if info.Description == "" {
		info.Description = extractText(micro.Key("description"))
	}

	info.PublishDateText = micro.Key("publishDate").Str()
	if epoch, ok := ParseISO8601(info.PublishDateText); ok {
		info.PublishDate = int64Ptr(epoch)
	}
	info.UploadDateText = micro.Key("uploadDate").Str()
	if epoch, ok := ParseISO8601(info.UploadDateText); ok {
		info.UploadDate = int64Ptr(epoch)
	}

	info.Category = micro.Key("category").Str()
	info.FamilyFriendly = micro.Key("isFamilySafe").Bool()
	info.OwnerChannelName = micro.Key("ownerChannelName").Str()

	if likes, ok := ParseViewCountText(micro.Key("likeCount").Str()); ok {
		info.LikesCount = int64Ptr(likes)
	}

	for _, c := range micro.Key("availableCountries").Arr() {
		if s := c.Str(); s != "" {
			info.AvailableCountries = append(info.AvailableCountries, s)
		}
	}
}

// videoChapters extracts chapter markers from the endscreen element list.
func videoChapters(root ytree.Node) []Chapter {
	elements := root.Get("endscreen", "endscreenRenderer", "elements")
	var chapters []Chapter
	for _, el := range elements.Arr() {
		er := el.Key("endscreenElementRenderer")
		if er.Key("style").Str() != "VIDEO" {
			continue
		}
		title := extractText(er.Key("title"))
		startMs, ok := er.Key("startMs").Int()
		if !ok {
			// startMs sometimes arrives as a string.
			ms, err := strconv.ParseInt(er.Key("startMs").Str(), 10, 64)
			if err != nil {
				continue
			}
			startMs = ms
		}
		secs := float64(startMs) / 1000
		chapters = append(chapters, Chapter{
			Title:              title,
			TimeStartSeconds:   secs,
			TimeStartFormatted: FormatSeconds(int(secs)),
		})
	}
	return chapters
}

// videoFormats extracts the streaming format variants.
func videoFormats(formats ytree.Node) []Format {
	var out []Format
	for _, item := range formats.Arr() {
		var f Format
		if itag, ok := item.Key("itag").Int(); ok {
			f.Itag = int64Ptr(itag)
		}
		f.URL = item.Key("url").Str()
		f.MimeType = item.Key("mimeType").Str()
		if w, ok := item.Key("width").Int(); ok {
			f.Width = int64Ptr(w)
		}
		if h, ok := item.Key("height").Int(); ok {
			f.Height = int64Ptr(h)
		}
		f.Quality = item.Key("quality").Str()
		f.QualityLabel = item.Key("qualityLabel").Str()
		if b, ok := item.Key("bitrate").Int(); ok {
			f.Bitrate = int64Ptr(b)
		}
		if cl, err := strconv.ParseInt(item.Key("contentLength").Str(), 10, 64); err == nil {
			f.ContentLength = int64Ptr(cl)
		}
		if ms, err := strconv.ParseFloat(item.Key("approxDurationMs").Str(), 64); err == nil {
			secs := ms / 1000
			f.DurationSeconds = &secs
		}
		out = append(out, f)
	}
	return out
}
