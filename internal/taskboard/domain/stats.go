package domain

import "math"

// StatusCount is one status's share of the board.
type StatusCount struct {
	Count   int
	Percent int
}

// Stats summarizes a board by canonical status.
type Stats struct {
	Scheduled    StatusCount
	Attempted    StatusCount
	Contacted    StatusCount
	NotContacted StatusCount
	Missed       StatusCount
	Total        int
}

// ComputeStats counts tasks per canonical status. Percentages are rounded
// to the nearest integer and are zero for an empty board.
func ComputeStats(tasks []UnifiedTask) Stats {
	counts := make(map[CallStatus]int, len(CanonicalStatuses))
	for _, task := range tasks {
		counts[task.CallStatus]++
	}

	total := 0
	for _, status := range CanonicalStatuses {
		total += counts[status]
	}

	share := func(status CallStatus) StatusCount {
		count := counts[status]
		if total == 0 {
			return StatusCount{Count: count}
		}
		return StatusCount{
			Count:   count,
			Percent: int(math.Round(100 * float64(count) / float64(total))),
		}
	}

	return Stats{
		Scheduled:    share(CallStatusScheduled),
		Attempted:    share(CallStatusAttempted),
		Contacted:    share(CallStatusContacted),
		NotContacted: share(CallStatusNotContacted),
		Missed:       share(CallStatusMissed),
		Total:        total,
	}
}
