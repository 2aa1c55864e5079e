package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Normalizers convert the display strings YouTube renders for humans
// ("1:02:03", "1.2M subscribers", "3 weeks ago") into canonical values.
// Parse failures downgrade to "field unknown" at the caller, never abort
// an extraction.

var (
	approxCountRE = regexp.MustCompile(`([\d.,]+)([MK]?)`)
	plainCountRE  = regexp.MustCompile(`([\d,]+)`)
	relativeRE    = regexp.MustCompile(`(\d+)\s+(\w+)`)
)

// ParseDurationSeconds parses "H:MM:SS", "M:SS" or "SS" into seconds.
func ParseDurationSeconds(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) < 1 || len(parts) > 3 {
		return 0, fmt.Errorf("duration %q: unexpected segment count", text)
	}
	total := 0
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return 0, fmt.Errorf("duration %q: bad segment %q", text, p)
		}
		total = total*60 + v
	}
	return total, nil
}

// ParseApproxCount parses abbreviated counts like "1.2M" or "15K views".
// Returns 0 when no numeric token is found.
func ParseApproxCount(text string) int64 {
	m := approxCountRE.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	num, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	switch m[2] {
	case "M":
		num *= 1_000_000
	case "K":
		num *= 1_000
	}
	return int64(num)
}

// relativeUnits maps the unit word of a "<n> <unit> ago" phrase to the length
// of one unit. Months and years are approximated the way the site rounds them.
var relativeUnits = map[string]time.Duration{
	"second": time.Second,
	"sec":    time.Second,
	"minute": time.Minute,
	"min":    time.Minute,
	"hour":   time.Hour,
	"hr":     time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"wk":     7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"mo":     30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
	"yr":     365 * 24 * time.Hour,
}

// ParseRelativeTime resolves "3 weeks ago" against now into a "2006-01-02"
// date. Returns "" when the text has no "ago" marker, no numeric phrase, or
// an unknown unit.
func ParseRelativeTime(text string, now time.Time) string {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "ago") {
		return ""
	}
	m := relativeRE.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	unit := strings.TrimSuffix(m[2], "s")
	d, ok := relativeUnits[unit]
	if !ok {
		return ""
	}
	return now.Add(-time.Duration(n) * d).Format("2006-01-02")
}

// ParseViewCountText parses an exact view count like "1,072,836,095 views".
func ParseViewCountText(text string) (int64, bool) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "views", "")
	s = strings.ReplaceAll(s, "view", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParsePlainCount pulls the first comma-grouped integer out of mixed text
// ("1,234 videos" → 1234).
func ParsePlainCount(text string) (int64, bool) {
	m := plainCountRE.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseISO8601 parses a calendar date or datetime into epoch seconds.
func ParseISO8601(text string) (int64, bool) {
	if text == "" {
		return 0, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}

// FormatSeconds renders a second count as "H:MM:SS" (or "M:SS" under an
// hour), matching the duration strings the site itself shows.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
