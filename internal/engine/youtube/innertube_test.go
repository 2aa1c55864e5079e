package youtube

import (
	"encoding/json"
	"testing"
)

func TestExtractInitialData(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"plain assignment",
			`<script>var ytInitialData = {"a": 1};</script>`,
			"1",
		},
		{
			"lookup before assignment",
			`<script>window["ytInitialData"] = reader;</script>` +
				`<script>var ytInitialData = {"a": 2};</script>`,
			"2",
		},
		{
			"nested braces and strings",
			`ytInitialData = {"a": 3, "b": {"c": "}", "d": "\"}{\""}};`,
			"3",
		},
		{
			"escaped backslash before quote",
			`ytInitialData = {"a": 4, "path": "C:\\"};`,
			"4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ExtractInitialData([]byte(tt.html))
			if err != nil {
				t.Fatalf("ExtractInitialData: %v", err)
			}
			got, _ := root.Key("a").Int()
			if want, _ := json.Number(tt.want).Int64(); got != want {
				t.Errorf("a = %d, want %s", got, tt.want)
			}
		})
	}
}

func TestExtractInitialDataErrors(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"marker missing", `<html><body>nothing here</body></html>`},
		{"marker never assigned", `window["ytInitialData"] && other.ytInitialData.foo`},
		{"unbalanced object", `ytInitialData = {"a": {"b": 1};`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExtractInitialData([]byte(tt.html)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExtractJSONBraceMatching(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"flat", `{"a":1} trailing`, `{"a":1}`},
		{"nested", `{"a":{"b":{}}}`, `{"a":{"b":{}}}`},
		{"brace in string", `{"a":"}"}`, `{"a":"}"}`},
		{"escaped quote", `{"a":"\"}"}`, `{"a":"\"}"}`},
		{"double backslash", `{"a":"\\"}`, `{"a":"\\"}`},
		{"unbalanced", `{"a":`, ""},
		{"not an object", `["a"]`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(extractJSON([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
