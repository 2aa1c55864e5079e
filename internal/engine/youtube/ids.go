package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	watchURLPrefix   = "https://www.youtube.com/watch?v="
	channelURLPrefix = "https://www.youtube.com/channel/"
)

var (
	videoIDRE    = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	channelIDRE  = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)
	playlistIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// IsValidVideoID reports whether s is an 11-character video ID.
func IsValidVideoID(s string) bool { return videoIDRE.MatchString(s) }

// ExtractVideoID resolves a video ID out of a raw ID or any of the URL forms
// the site uses: watch?v=, youtu.be/, /embed/, /shorts/. Returns "" when
// nothing resolves.
func ExtractVideoID(urlOrID string) string {
	if urlOrID == "" {
		return ""
	}
	if IsValidVideoID(urlOrID) {
		return urlOrID
	}

	u, err := url.Parse(urlOrID)
	if err != nil {
		return ""
	}

	pick := func(id string) string {
		if IsValidVideoID(id) {
			return id
		}
		return ""
	}

	switch {
	case strings.Contains(u.Host, "youtube.com"):
		parts := strings.Split(u.Path, "/")
		switch {
		case strings.Contains(u.Path, "watch"):
			return pick(u.Query().Get("v"))
		case strings.Contains(u.Path, "embed"), strings.Contains(u.Path, "shorts"):
			if len(parts) > 2 {
				return pick(parts[2])
			}
		}
	case strings.Contains(u.Host, "youtu.be"):
		parts := strings.Split(u.Path, "/")
		if len(parts) > 1 {
			return pick(parts[1])
		}
	}
	return ""
}

// ExtractPlaylistID resolves a playlist ID out of a raw ID or a
// playlist?list= URL. Returns "" when nothing resolves.
func ExtractPlaylistID(urlOrID string) string {
	if urlOrID == "" {
		return ""
	}
	if playlistIDRE.MatchString(urlOrID) && !strings.Contains(urlOrID, "/") {
		return urlOrID
	}
	u, err := url.Parse(urlOrID)
	if err != nil {
		return ""
	}
	if strings.Contains(u.Host, "youtube.com") {
		if list := u.Query().Get("list"); list != "" {
			return list
		}
	}
	return ""
}

// ChannelIDFromInput resolves a channel ID from a bare UC… ID or a
// /channel/<id> URL. Handles and usernames resolve to page URLs instead; see
// channelPageURL.
func ChannelIDFromInput(input string) string {
	if input == "" {
		return ""
	}
	if channelIDRE.MatchString(input) {
		return input
	}
	u, err := url.Parse(input)
	if err != nil {
		return ""
	}
	if strings.Contains(u.Host, "youtube.com") {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) >= 2 && parts[0] == "channel" {
			return parts[1]
		}
	}
	return ""
}

// channelPageURL maps any accepted channel input (ID, @handle, username,
// URL) to the page URL to fetch.
func channelPageURL(input string) string {
	if id := ChannelIDFromInput(input); id != "" {
		return channelURLPrefix + id
	}
	switch {
	case strings.HasPrefix(input, "@"):
		return "https://www.youtube.com/" + input
	case !strings.Contains(input, "/"):
		return "https://www.youtube.com/user/" + input
	default:
		return input
	}
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string { return watchURLPrefix + videoID }

// ChannelURL returns the canonical channel URL for a channel ID.
func ChannelURL(channelID string) string { return channelURLPrefix + channelID }
