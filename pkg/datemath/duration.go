package datemath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// "3-4 hours", "3–4h", "2 - 3 hrs"
	rangeRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:-|–|—|to)\s*(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)?`)
	// "8 hours", "90 minutes", "1.5h"
	singleRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)?`)
)

// ParseDurationMinutes converts a textual duration into whole minutes.
// Hours convert at x60; a range such as "3-4 hours" resolves to its
// arithmetic mean. A bare number is taken as minutes. The result is
// never negative.
func ParseDurationMinutes(text string) (int, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if m := rangeRe.FindStringSubmatch(text); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		return toMinutes((lo+hi)/2, m[3]), nil
	}

	if m := singleRe.FindStringSubmatch(text); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return toMinutes(v, m[2]), nil
	}

	return 0, fmt.Errorf("unparseable duration: %q", text)
}

func toMinutes(value float64, unit string) int {
	if strings.HasPrefix(unit, "h") {
		value *= 60
	}
	if value < 0 {
		value = 0
	}
	return int(math.Round(value))
}
