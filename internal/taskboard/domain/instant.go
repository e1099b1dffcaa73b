package domain

import (
	"strconv"
	"strings"
	"time"

	"gym_backoffice_backend/platform/timeutil"
)

// Zone-aware ISO-8601 forms beyond RFC3339: minute precision and basic
// (colon-less) offsets.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z0700",
}

var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	timeutil.DateLayout,
}

// ParseInstant resolves a candidate timestamp permissively. Native times are
// accepted when set; strings are tried as ISO-8601 first and then as a
// three-part numeric date. Zone-less values are read in loc.
//
// For the numeric form a four-digit first part means Y-M-D and a
// four-digit last part means D-M-Y. Inputs like 03/04/2024 are therefore
// read day first. Parts must be plain digits and the day must exist in
// the month.
func ParseInstant(value any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return ParseInstant(*v, loc)
	case string:
		return parseInstantString(v, loc)
	case *string:
		if v == nil {
			return time.Time{}, false
		}
		return parseInstantString(*v, loc)
	default:
		return time.Time{}, false
	}
}

func parseInstantString(raw string, loc *time.Location) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return parseNumericDate(value, loc)
}

func parseNumericDate(value string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(strings.ReplaceAll(value, "/", "-"), "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, part := range parts {
		if !allDigits(part) {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	var year, month, day int
	switch {
	case len(parts[0]) == 4:
		year, month, day = nums[0], nums[1], nums[2]
	case len(parts[2]) == 4:
		day, month, year = nums[0], nums[1], nums[2]
	default:
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day {
		// 31-02-2024 would otherwise roll over into March.
		return time.Time{}, false
	}
	return t, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
