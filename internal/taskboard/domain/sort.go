package domain

import (
	"sort"
)

// Merge concatenates follow-up tasks and enquiry tasks, orders them by
// effective time and numbers them from 1.
func Merge(followUps, enquiries []UnifiedTask) []UnifiedTask {
	merged := make([]UnifiedTask, 0, len(followUps)+len(enquiries))
	merged = append(merged, followUps...)
	merged = append(merged, enquiries...)
	SortByEffectiveTime(merged)
	AssignSequence(merged, 0)
	return merged
}

// SortByEffectiveTime orders tasks ascending by effective time. Tasks
// without one go last; ties keep their input order.
func SortByEffectiveTime(tasks []UnifiedTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].EffectiveScheduledTime, tasks[j].EffectiveScheduledTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

// AssignSequence numbers tasks from offset+1 in slice order.
func AssignSequence(tasks []UnifiedTask, offset int) {
	for i := range tasks {
		tasks[i].Sequence = offset + i + 1
	}
}

// Paginate returns one page of tasks. A non-positive pageSize returns all
// of them; pages start at 1.
func Paginate(tasks []UnifiedTask, page, pageSize int) []UnifiedTask {
	if pageSize <= 0 {
		return tasks
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(tasks) {
		return []UnifiedTask{}
	}
	end := start + pageSize
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[start:end]
}
