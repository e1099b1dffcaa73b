package domain

import "testing"

func TestComputeStatsMixedSources(t *testing.T) {
	tasks := []UnifiedTask{
		{CallStatus: NormalizeFollowUpStatus(strPtr("scheduled"))},
		{CallStatus: NormalizeFollowUpStatus(strPtr("contacted"))},
		{CallStatus: NormalizeEnquiryStatus(strPtr("not-called")), IsEnquiry: true},
	}

	stats := ComputeStats(tasks)

	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.Scheduled != (StatusCount{Count: 2, Percent: 67}) {
		t.Fatalf("unexpected scheduled %+v", stats.Scheduled)
	}
	if stats.Contacted != (StatusCount{Count: 1, Percent: 33}) {
		t.Fatalf("unexpected contacted %+v", stats.Contacted)
	}
	for _, zero := range []StatusCount{stats.Attempted, stats.NotContacted, stats.Missed} {
		if zero != (StatusCount{}) {
			t.Fatalf("expected zero count, got %+v", zero)
		}
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats != (Stats{}) {
		t.Fatalf("expected all zero stats, got %+v", stats)
	}
}

func TestComputeStatsCountsSumToTotal(t *testing.T) {
	var tasks []UnifiedTask
	for i := 0; i < 7; i++ {
		tasks = append(tasks, UnifiedTask{CallStatus: CanonicalStatuses[i%len(CanonicalStatuses)]})
	}

	stats := ComputeStats(tasks)
	sum := stats.Scheduled.Count + stats.Attempted.Count + stats.Contacted.Count +
		stats.NotContacted.Count + stats.Missed.Count
	if sum != stats.Total || stats.Total != len(tasks) {
		t.Fatalf("expected counts to sum to %d, got sum %d total %d", len(tasks), sum, stats.Total)
	}
}
