package youtube

import (
	"testing"
	"time"
)

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"0:45", 45, true},
		{"3:05", 185, true},
		{"1:02:03", 3723, true},
		{"10:00:00", 36000, true},
		{"45", 45, true},
		{"", 0, false},
		{"1:2:3:4", 0, false},
		{"abc", 0, false},
		{"-1:30", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDurationSeconds(tt.text)
			if tt.ok != (err == nil) {
				t.Fatalf("ParseDurationSeconds(%q) err = %v", tt.text, err)
			}
			if tt.ok && got != tt.want {
				t.Errorf("ParseDurationSeconds(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseApproxCount(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{"1.2M subscribers", 1_200_000},
		{"15K views", 15_000},
		{"523 subscribers", 523},
		{"2,100 views", 2100},
		{"no numbers here", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseApproxCount(tt.text); got != tt.want {
				t.Errorf("ParseApproxCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		text string
		want string
	}{
		{"3 weeks ago", "2024-05-25"},
		{"2 days ago", "2024-06-13"},
		{"1 month ago", "2024-05-16"},
		// 2x365d back from 2024-06-15 crosses leap day 2024-02-29.
		{"2 years ago", "2022-06-16"},
		{"5 hours ago", "2024-06-15"},
		{"Streamed 3 days ago", "2024-06-12"},
		{"3 weeks", ""},
		{"ago", ""},
		{"3 fortnights ago", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseRelativeTime(tt.text, now); got != tt.want {
				t.Errorf("ParseRelativeTime(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseViewCountText(t *testing.T) {
	tests := []struct {
		text string
		want int64
		ok   bool
	}{
		{"1,072,836,095 views", 1_072_836_095, true},
		{"1 view", 1, true},
		{"123456", 123456, true},
		{"1.2M views", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseViewCountText(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseViewCountText(%q) = %d, %v, want %d, %v", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParsePlainCount(t *testing.T) {
	tests := []struct {
		text string
		want int64
		ok   bool
	}{
		{"1,234 videos", 1234, true},
		{"42", 42, true},
		{"Joined Mar 14, 2006", 14, true},
		{"no digits", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParsePlainCount(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParsePlainCount(%q) = %d, %v, want %d, %v", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		text string
		want int64
		ok   bool
	}{
		{"2009-10-25", 1256428800, true},
		{"2009-10-25T06:57:33-07:00", 1256479053, true},
		{"2009-10-25T06:57:33", 1256453853, true},
		{"not a date", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseISO8601(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParseISO8601(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseISO8601(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{45, "0:45"},
		{185, "3:05"},
		{3723, "1:02:03"},
		{36000, "10:00:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSeconds(tt.secs); got != tt.want {
				t.Errorf("FormatSeconds(%d) = %q, want %q", tt.secs, got, tt.want)
			}
		})
	}
}
