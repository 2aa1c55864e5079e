package youtube

import "fmt"

// Thumbnail is one image variant.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ThumbnailSet holds the five canonical size variants the image CDN serves
// for every video. Derived purely from the video ID; no network call.
type ThumbnailSet struct {
	Default  Thumbnail `json:"default"`
	Medium   Thumbnail `json:"medium"`
	High     Thumbnail `json:"high"`
	Standard Thumbnail `json:"standard"`
	Maxres   Thumbnail `json:"maxres"`
}

// Thumbnails builds the canonical thumbnail set for a video ID.
func Thumbnails(videoID string) ThumbnailSet {
	base := fmt.Sprintf("https://img.youtube.com/vi/%s", videoID)
	return ThumbnailSet{
		Default:  Thumbnail{URL: base + "/default.jpg", Width: 120, Height: 90},
		Medium:   Thumbnail{URL: base + "/mqdefault.jpg", Width: 320, Height: 180},
		High:     Thumbnail{URL: base + "/hqdefault.jpg", Width: 480, Height: 360},
		Standard: Thumbnail{URL: base + "/sddefault.jpg", Width: 640, Height: 480},
		Maxres:   Thumbnail{URL: base + "/maxresdefault.jpg", Width: 1280, Height: 720},
	}
}
