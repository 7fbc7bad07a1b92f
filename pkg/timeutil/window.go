package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is used when a window flag is left empty.
const DefaultWindow = "1w"

const day = 24 * time.Hour

var (
	windowSegment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	windowUnits   = map[string]time.Duration{
		"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": 7 * day, "wk": 7 * day, "wks": 7 * day, "week": 7 * day, "weeks": 7 * day,
	}
)

// ParseWindow parses look-back windows such as "3d", "1w" or "2w3d" and returns
// the duration plus its canonical spelling.
func ParseWindow(input string) (time.Duration, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		remaining = DefaultWindow
	}

	var total time.Duration
	for len(remaining) > 0 {
		m := windowSegment.FindStringSubmatch(remaining)
		if len(m) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		unit, ok := windowUnits[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * unit
		remaining = remaining[len(m[0]):]
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d using w/d/h tokens, dropping anything below an hour.
func FormatWindow(d time.Duration) string {
	units := []struct {
		label string
		size  time.Duration
	}{{"w", 7 * day}, {"d", day}, {"h", time.Hour}}

	var b strings.Builder
	for _, u := range units {
		if d < u.size {
			continue
		}
		n := d / u.size
		d -= n * u.size
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0h"
	}
	return b.String()
}
