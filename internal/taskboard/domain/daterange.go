package domain

import (
	"strings"
	"time"

	"gym_backoffice_backend/platform/timeutil"
)

// Date filter keywords accepted by the board.
const (
	DateFilterToday      = "today"
	DateFilterLast7Days  = "last-7-days"
	DateFilterLast30Days = "last-30-days"
	DateFilterDefault    = "default"
)

// DateRange is a closed interval of instants.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolveDateRange turns explicit bounds or a keyword into whole calendar
// days in now's location. Explicit dates win over the keyword; a single
// parseable bound selects that one day; reversed bounds are swapped. An
// unknown keyword or nothing at all yields today.
func ResolveDateRange(fromDate, toDate, keyword string, now time.Time) DateRange {
	loc := now.Location()

	from, fromOK := ParseInstant(fromDate, loc)
	to, toOK := ParseInstant(toDate, loc)

	switch {
	case fromOK && toOK:
		from, to = from.In(loc), to.In(loc)
		if to.Before(from) {
			from, to = to, from
		}
		return DateRange{Start: timeutil.StartOfDay(from), End: timeutil.EndOfDay(to)}
	case fromOK:
		return singleDay(from.In(loc))
	case toOK:
		return singleDay(to.In(loc))
	}

	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case DateFilterLast7Days:
		return DateRange{Start: timeutil.StartOfDay(now.AddDate(0, 0, -6)), End: timeutil.EndOfDay(now)}
	case DateFilterLast30Days:
		return DateRange{Start: timeutil.StartOfDay(now.AddDate(0, 0, -29)), End: timeutil.EndOfDay(now)}
	default:
		return singleDay(now)
	}
}

func singleDay(t time.Time) DateRange {
	return DateRange{Start: timeutil.StartOfDay(t), End: timeutil.EndOfDay(t)}
}
