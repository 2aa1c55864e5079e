package youtube

import (
	"testing"

	"github.com/tn3w/ytbpy/internal/engine/ytree"
)

func TestSearchPage(t *testing.T) {
	tree, err := ytree.Parse([]byte(`{
		"contents": {"twoColumnSearchResultsRenderer": {"primaryContents": {"sectionListRenderer": {"contents": [
			{"itemSectionRenderer": {"contents": [
				{"videoRenderer": {"videoId": "aaaaaaaaaa1", "title": {"runs": [{"text": "First"}]}}},
				{"channelRenderer": {"channelId": "UCabcdefghijklmnopqrstuv"}},
				{"videoRenderer": {"videoId": "aaaaaaaaaa2"}}
			]}},
			{"continuationItemRenderer": {"continuationEndpoint": {
				"continuationCommand": {"token": "CONT_TOKEN_1"}
			}}}
		]}}}}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	p := searchPage(tree)
	if len(p.videos) != 2 {
		t.Fatalf("got %d videos, want 2 (non-video renderers skipped)", len(p.videos))
	}
	if p.videos[0].Title != "First" || p.videos[1].VideoID != "aaaaaaaaaa2" {
		t.Errorf("videos = %+v", p.videos)
	}
	if p.token != "CONT_TOKEN_1" {
		t.Errorf("token = %q", p.token)
	}
}

func TestSearchPageEmpty(t *testing.T) {
	p := searchPage(ytree.From(map[string]any{"contents": map[string]any{}}))
	if len(p.videos) != 0 || p.token != "" {
		t.Errorf("empty tree yielded %+v", p)
	}
}
