package domain

import (
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	native := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		value any
		want  time.Time
		ok    bool
	}{
		{"native time", native, native, true},
		{"native pointer", &native, native, true},
		{"zero time", time.Time{}, time.Time{}, false},
		{"nil pointer", (*time.Time)(nil), time.Time{}, false},
		{"rfc3339", "2024-03-10T09:00:00Z", native, true},
		{"utc minute precision", "2024-03-10T09:00Z", native, true},
		{"basic offset", "2024-03-10T14:30:00+0530", native, true},
		{"basic offset minute precision", "2024-03-10T14:30+0530", native, true},
		{"iso without seconds", "2024-03-10T09:00", time.Date(2024, 3, 10, 9, 0, 0, 0, amsterdam), true},
		{"iso date", "2024-03-10", time.Date(2024, 3, 10, 0, 0, 0, 0, amsterdam), true},
		{"year first unpadded", "2024/3/5", time.Date(2024, 3, 5, 0, 0, 0, 0, amsterdam), true},
		{"day first", "10/03/2024", time.Date(2024, 3, 10, 0, 0, 0, 0, amsterdam), true},
		{"day first dashes", "25-12-2023", time.Date(2023, 12, 25, 0, 0, 0, 0, amsterdam), true},
		{"month out of range", "10/13/2024", time.Time{}, false},
		{"day out of range", "32/01/2024", time.Time{}, false},
		{"signed part", "+5-03-2024", time.Time{}, false},
		{"negative part", "5--3-2024", time.Time{}, false},
		{"day past month end", "31-02-2024", time.Time{}, false},
		{"leap day", "29/02/2024", time.Date(2024, 2, 29, 0, 0, 0, 0, amsterdam), true},
		{"no four digit year", "10/03/24", time.Time{}, false},
		{"two parts", "2024-03", time.Time{}, false},
		{"garbage", "next tuesday", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"unsupported type", 42, time.Time{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseInstant(tc.value, amsterdam)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v (%v)", tc.ok, ok, got)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
