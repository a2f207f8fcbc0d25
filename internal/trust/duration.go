package trust

import (
	"regexp"
	"strconv"
	"strings"
)

// unparseableDays is returned when a response-time string has no
// recognizable unit; malformed input earns no response-time points.
const unparseableDays = 999

var durationPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(minute|min|hour|hr|day|week)s?`)

// ParseResponseDays parses a free-text response time such as "2.3 days",
// "48 hours", or "30 minutes" into a day count.
func ParseResponseDays(text string) float64 {
	match := durationPattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return unparseableDays
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return unparseableDays
	}

	switch match[2] {
	case "minute", "min":
		return value / (24 * 60)
	case "hour", "hr":
		return value / 24
	case "week":
		return value * 7
	default: // day
		return value
	}
}
