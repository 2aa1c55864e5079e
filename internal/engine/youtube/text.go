package youtube

import (
	"strings"

	"github.com/tn3w/ytbpy/internal/engine/ytree"
)

// extractText flattens the text-container shapes the page data mixes freely:
// a plain string, {"simpleText": ...}, {"runs": [{"text": ...}, ...]}, or the
// newer view-model {"content": ...}. Anything else is "".
func extractText(n ytree.Node) string {
	if !n.Exists() {
		return ""
	}
	if s, ok := n.Value().(string); ok {
		return s
	}
	if n.Has("simpleText") {
		return n.Key("simpleText").Str()
	}
	if runs := n.Key("runs"); runs.Exists() {
		var b strings.Builder
		for _, run := range runs.Arr() {
			b.WriteString(run.Key("text").Str())
		}
		return b.String()
	}
	if n.Has("content") {
		return n.Key("content").Str()
	}
	return ""
}

// dynamicText reads a dynamicTextViewModel's {"text": {"content": ...}}.
func dynamicText(n ytree.Node) string {
	return n.Get("text", "content").Str()
}

// firstRun returns the first runs fragment, used for byline/owner nodes where
// the channel link is always the leading run.
func firstRun(n ytree.Node) ytree.Node {
	return n.Get("runs", 0)
}

// lastSourceURL returns the url of the last (largest) entry of an image
// sources/thumbnails array.
func lastSourceURL(sources ytree.Node) string {
	k := sources.Len()
	if k == 0 {
		return ""
	}
	return sources.Index(k - 1).Key("url").Str()
}
