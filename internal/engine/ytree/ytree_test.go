package ytree

import "testing"

const sample = `{
	"contents": {
		"tabs": [
			{"tabRenderer": {"title": "Videos", "count": 42}},
			{"tabRenderer": {"title": "About", "live": true}}
		]
	},
	"big": 9007199254740993,
	"nothing": null
}`

func TestGetPaths(t *testing.T) {
	n, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	t.Run("nested key and index", func(t *testing.T) {
		got := n.Get("contents", "tabs", 1, "tabRenderer", "title").Str()
		if got != "About" {
			t.Errorf("expected About, got %q", got)
		}
	})

	t.Run("integer value", func(t *testing.T) {
		v, ok := n.Get("contents", "tabs", 0, "tabRenderer", "count").Int()
		if !ok || v != 42 {
			t.Errorf("expected 42, got %d ok=%v", v, ok)
		}
	})

	t.Run("large integer survives", func(t *testing.T) {
		v, ok := n.Get("big").Int()
		if !ok || v != 9007199254740993 {
			t.Errorf("expected 9007199254740993, got %d ok=%v", v, ok)
		}
	})

	t.Run("bool", func(t *testing.T) {
		if !n.Get("contents", "tabs", 1, "tabRenderer", "live").Bool() {
			t.Error("expected live=true")
		}
	})
}

func TestAbsentChaining(t *testing.T) {
	n, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	cases := []struct {
		name string
		path []any
	}{
		{"missing key", []any{"missing"}},
		{"missing nested key", []any{"contents", "missing", "deeper", "still"}},
		{"index out of range", []any{"contents", "tabs", 9, "tabRenderer"}},
		{"negative index", []any{"contents", "tabs", -1}},
		{"key on array", []any{"contents", "tabs", "notAnIndex"}},
		{"index on object", []any{"contents", 0}},
		{"descend through scalar", []any{"big", "nested", "deeper"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Get(tc.path...)
			if got.Exists() {
				t.Errorf("expected absent node for path %v", tc.path)
			}
			// Accessors on absent nodes must all be safe zero values.
			if got.Str() != "" || got.Bool() || got.Len() != 0 || got.Arr() != nil {
				t.Errorf("absent node leaked a value for path %v", tc.path)
			}
			if _, ok := got.Int(); ok {
				t.Errorf("absent node returned an int for path %v", tc.path)
			}
			// Chaining off an absent node stays absent.
			if got.Key("x").Index(0).Get("y", 1).Exists() {
				t.Errorf("chained access off absent node exists for path %v", tc.path)
			}
		})
	}
}

func TestZeroNode(t *testing.T) {
	var n Node
	if n.Exists() || n.Get("a", 0, "b").Exists() {
		t.Error("zero Node must be absent")
	}
	if n.Value() != nil {
		t.Error("zero Node value must be nil")
	}
}

func TestFrom(t *testing.T) {
	n := From(map[string]any{
		"videoId": "dQw4w9WgXcQ",
		"badges":  []any{map[string]any{"label": "LIVE"}},
		"views":   float64(120),
	})

	if got := n.Get("videoId").Str(); got != "dQw4w9WgXcQ" {
		t.Errorf("expected videoId, got %q", got)
	}
	if got := n.Get("badges", 0, "label").Str(); got != "LIVE" {
		t.Errorf("expected LIVE, got %q", got)
	}
	if v, ok := n.Get("views").Int(); !ok || v != 120 {
		t.Errorf("expected 120, got %d ok=%v", v, ok)
	}
	if From(nil).Exists() {
		t.Error("From(nil) must be absent")
	}
}

func TestNullIsPresent(t *testing.T) {
	n, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	null := n.Get("nothing")
	if !null.Exists() {
		t.Error("explicit null should exist")
	}
	if null.Str() != "" || null.IsObject() {
		t.Error("null must not read as string or object")
	}
}

func TestArrIteration(t *testing.T) {
	n, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tabs := n.Get("contents", "tabs").Arr()
	if len(tabs) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(tabs))
	}
	titles := []string{}
	for _, tab := range tabs {
		titles = append(titles, tab.Get("tabRenderer", "title").Str())
	}
	if titles[0] != "Videos" || titles[1] != "About" {
		t.Errorf("unexpected titles %v", titles)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte(`{"truncated":`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
	if _, err := Parse([]byte(``)); err == nil {
		t.Error("expected error for empty input")
	}
}
