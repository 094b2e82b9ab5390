package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DateFormatISO is the wire format for all dates produced by this package.
const DateFormatISO = "2006-01-02"

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// WeekBounds returns the Monday and Sunday of the week containing t.
// Weeks start on Monday.
func WeekBounds(t time.Time) (monday, sunday time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	monday = startOfDay(t.AddDate(0, 0, -(weekday - 1)))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// WeekdayDate resolves a day name ("Monday", "tuesday", ...) to the
// matching date in the current week of now, formatted as YYYY-MM-DD.
func WeekdayDate(name string, now time.Time) (string, error) {
	target, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown weekday: %q", name)
	}

	monday, _ := WeekBounds(now)
	offset := int(target) - 1
	if target == time.Sunday {
		offset = 6
	}
	return monday.AddDate(0, 0, offset).Format(DateFormatISO), nil
}

// RelativeDate resolves "today", "yesterday" and "tomorrow" against now,
// formatted as YYYY-MM-DD.
func RelativeDate(relative string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(relative)) {
	case "today":
		return now.Format(DateFormatISO), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(DateFormatISO), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(DateFormatISO), nil
	}
	return "", fmt.Errorf("unknown relative day: %q", relative)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
