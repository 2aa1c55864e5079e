// Package youtube extracts normalized metadata records from the renderer
// trees embedded in YouTube pages and InnerTube API responses. The upstream
// schema is undocumented and shifts constantly, so every extractor treats a
// missing field as "omit it", never as an error; only entry-boundary failures
// (bad input, unreachable page, undecodable tree) abort an operation.
package youtube

// Video is one normalized video record. VideoID is the only mandatory field;
// renderers without one are dropped entirely rather than emitted empty.
type Video struct {
	VideoID             string       `json:"video_id"`
	URL                 string       `json:"url"`
	Thumbnails          ThumbnailSet `json:"thumbnails"`
	Title               string       `json:"title,omitempty"`
	ChannelName         string       `json:"channel_name,omitempty"`
	ChannelID           string       `json:"channel_id,omitempty"`
	ChannelURL          string       `json:"channel_url,omitempty"`
	ChannelVerified     bool         `json:"channel_verified,omitempty"`
	DurationText        string       `json:"duration_text,omitempty"`
	DurationSeconds     *int         `json:"duration_seconds,omitempty"`
	Views               *int64       `json:"views,omitempty"`
	ViewCountText       string       `json:"view_count_text,omitempty"`
	PublishedTime       string       `json:"published_time,omitempty"`
	PublishedDate       string       `json:"published_date,omitempty"`
	ApproxUploadDate    string       `json:"approximate_upload_date,omitempty"`
	IsLive              bool         `json:"is_live"`
	IsUpcoming          bool         `json:"is_upcoming,omitempty"`
	Badges              []string     `json:"badges,omitempty"`
	DescriptionSnippet  string       `json:"description_snippet,omitempty"`
	RichThumbnailURL    string       `json:"rich_thumbnail_url,omitempty"`
	Index               *int         `json:"index,omitempty"`
}

// SearchResult is the search_videos output envelope.
type SearchResult struct {
	Query        string  `json:"query"`
	ResultsCount int     `json:"results_count"`
	PagesFetched int     `json:"pages_fetched"`
	Results      []Video `json:"results"`
	Error        string  `json:"error,omitempty"`
}

// ExternalLink is one entry of a channel's external links list.
type ExternalLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ChannelInfo is the channel_info output envelope. Fields fill first-match-
// wins across the header fallback tiers; a set field is never overwritten by
// a lower-priority shape.
type ChannelInfo struct {
	ChannelID             string         `json:"channel_id,omitempty"`
	ChannelURL            string         `json:"channel_url,omitempty"`
	Title                 string         `json:"title,omitempty"`
	Description           string         `json:"description,omitempty"`
	DescriptionSnippet    string         `json:"description_snippet,omitempty"`
	LogoURL               string         `json:"logo_url,omitempty"`
	BannerURL             string         `json:"banner_url,omitempty"`
	SubscriberCountText   string         `json:"subscriber_count_text,omitempty"`
	SubscriberCountApprox *int64         `json:"subscriber_count_approximate,omitempty"`
	VideoCount            *int64         `json:"video_count,omitempty"`
	ViewCount             *int64         `json:"view_count,omitempty"`
	JoinedDate            string         `json:"joined_date,omitempty"`
	Location              string         `json:"location,omitempty"`
	Handle                string         `json:"handle,omitempty"`
	HandleName            string         `json:"handle_name,omitempty"`
	VanityURL             string         `json:"vanity_url,omitempty"`
	ExternalLinks         []ExternalLink `json:"external_links,omitempty"`
	Videos                []Video        `json:"videos,omitempty"`
	VideosCount           int            `json:"videos_count,omitempty"`
	Error                 string         `json:"error,omitempty"`
}

// ChannelVideos is the reduced channel_videos output envelope.
type ChannelVideos struct {
	ChannelID    string  `json:"channel_id"`
	ChannelTitle string  `json:"channel_title"`
	Videos       []Video `json:"videos"`
	VideosCount  int     `json:"videos_count"`
	Error        string  `json:"error,omitempty"`
}

// PlaylistInfo is the playlist_info output envelope. Description is always
// present, defaulting to the empty string.
type PlaylistInfo struct {
	PlaylistID   string  `json:"playlist_id"`
	PlaylistURL  string  `json:"playlist_url"`
	Title        string  `json:"title,omitempty"`
	Description  string  `json:"description"`
	VideoCount   *int64  `json:"video_count,omitempty"`
	ViewCount    *int64  `json:"view_count,omitempty"`
	LastUpdated  string  `json:"last_updated,omitempty"`
	Privacy      string  `json:"privacy,omitempty"`
	Owner        string  `json:"owner,omitempty"`
	OwnerID      string  `json:"owner_id,omitempty"`
	OwnerURL     string  `json:"owner_url,omitempty"`
	Videos       []Video `json:"videos"`
	VideosCount  int     `json:"videos_count"`
	PagesFetched int     `json:"pages_fetched"`
	TotalVideos  *int64  `json:"total_videos,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// Chapter is one endscreen video chapter marker.
type Chapter struct {
	Title              string  `json:"title"`
	TimeStartSeconds   float64 `json:"time_start_seconds"`
	TimeStartFormatted string  `json:"time_start_formatted"`
}

// Format is one streaming format variant reported by the player response.
type Format struct {
	Itag            *int64   `json:"itag,omitempty"`
	URL             string   `json:"url,omitempty"`
	MimeType        string   `json:"mime_type,omitempty"`
	Width           *int64   `json:"width,omitempty"`
	Height          *int64   `json:"height,omitempty"`
	Quality         string   `json:"quality,omitempty"`
	QualityLabel    string   `json:"quality_label,omitempty"`
	Bitrate         *int64   `json:"bitrate,omitempty"`
	ContentLength   *int64   `json:"content_length,omitempty"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
}

// VideoInfo is the video_info output envelope, merged from the player
// response's videoDetails and playerMicroformatRenderer.
type VideoInfo struct {
	VideoID            string       `json:"video_id"`
	Thumbnails         ThumbnailSet `json:"thumbnails"`
	Title              string       `json:"title,omitempty"`
	Duration           string       `json:"duration,omitempty"`
	DurationSeconds    *int         `json:"duration_seconds,omitempty"`
	ViewsCount         *int64       `json:"views_count,omitempty"`
	Description        string       `json:"description,omitempty"`
	ChannelID          string       `json:"channel_id,omitempty"`
	AuthorName         string       `json:"author_name,omitempty"`
	AuthorURL          string       `json:"author_url,omitempty"`
	IsLive             bool         `json:"is_live"`
	IsPrivate          bool         `json:"is_private"`
	Keywords           []string     `json:"keywords,omitempty"`
	PublishDateText    string       `json:"publish_date_text,omitempty"`
	PublishDate        *int64       `json:"publish_date,omitempty"`
	UploadDateText     string       `json:"upload_date_text,omitempty"`
	UploadDate         *int64       `json:"upload_date,omitempty"`
	Category           string       `json:"category,omitempty"`
	FamilyFriendly     bool         `json:"family_friendly,omitempty"`
	AvailableCountries []string     `json:"available_countries,omitempty"`
	OwnerChannelName   string       `json:"owner_channel_name,omitempty"`
	LikesCount         *int64       `json:"likes_count,omitempty"`
	Chapters           []Chapter    `json:"chapters,omitempty"`
	Formats            []Format     `json:"formats,omitempty"`
	Error              string       `json:"error,omitempty"`
}

// RelatedVideos is the related_videos output envelope.
type RelatedVideos struct {
	VideoID      string  `json:"video_id"`
	Results      []Video `json:"results"`
	ResultsCount int     `json:"results_count"`
	Error        string  `json:"error,omitempty"`
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
