package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestResolveFilterFallsBackOnMalformedValues(t *testing.T) {
	org := uuid.New()
	f := ResolveFilter(org, FilterParams{
		StaffID:    "not-a-uuid",
		CallType:   "carrier-pigeon",
		CallStatus: "maybe",
		Tab:        "archive",
	}, boardNow)

	if f.OrganizationID != org {
		t.Fatal("organization must always be set")
	}
	if f.StaffID != nil || f.CallType != "" || f.CallStatus != "" {
		t.Fatalf("expected defaults, got %+v", f)
	}
	if f.Tab != TabUpcoming {
		t.Fatalf("expected upcoming tab, got %q", f.Tab)
	}
}

func TestResolveFilterAllMeansUnfiltered(t *testing.T) {
	f := ResolveFilter(uuid.New(), FilterParams{StaffID: "all", CallType: "all", CallStatus: "all"}, boardNow)
	if f.StaffID != nil || f.CallType != "" || f.CallStatus != "" {
		t.Fatalf("expected all to mean no filter, got %+v", f)
	}
}

func TestIncludesEnquiries(t *testing.T) {
	cases := map[CallType]bool{
		"":                 true,
		CallTypeEnquiry:    true,
		CallTypeRenewal:    false,
		CallTypeAssessment: false,
		CallTypeOther:      false,
	}
	for callType, want := range cases {
		if got := (Filter{CallType: callType}).IncludesEnquiries(); got != want {
			t.Fatalf("call type %q: expected %v, got %v", callType, want, got)
		}
	}
}

func TestListStatuses(t *testing.T) {
	upcoming := Filter{Tab: TabUpcoming}.ListStatuses()
	if len(upcoming) != 3 {
		t.Fatalf("expected 3 upcoming statuses, got %v", upcoming)
	}
	attempted := Filter{Tab: TabAttempted}.ListStatuses()
	if len(attempted) != 2 || attempted[0] != CallStatusAttempted || attempted[1] != CallStatusContacted {
		t.Fatalf("unexpected attempted statuses %v", attempted)
	}
	explicit := Filter{Tab: TabAttempted, CallStatus: CallStatusMissed}.ListStatuses()
	if len(explicit) != 1 || explicit[0] != CallStatusMissed {
		t.Fatalf("expected explicit status to win over tab, got %v", explicit)
	}
	if (Filter{Tab: TabAttempted}).ExportStatuses() != nil {
		t.Fatal("export must ignore the tab")
	}
}

func TestFilterByStatus(t *testing.T) {
	tasks := []UnifiedTask{
		{CallStatus: CallStatusScheduled},
		{CallStatus: CallStatusAttempted},
		{CallStatus: CallStatusMissed},
	}
	got := FilterByStatus(tasks, []CallStatus{CallStatusScheduled, CallStatusMissed})
	if len(got) != 2 || got[0].CallStatus != CallStatusScheduled || got[1].CallStatus != CallStatusMissed {
		t.Fatalf("unexpected filtered tasks %+v", got)
	}
	if len(FilterByStatus(tasks, nil)) != 3 {
		t.Fatal("nil status set must keep everything")
	}
}
