package domain

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWriteCSVQuotesEveryField(t *testing.T) {
	tasks := []UnifiedTask{{
		Sequence:     1,
		DateLabel:    "10/03/2024",
		TimeLabel:    "09:00 AM",
		CallType:     CallTypeRenewal,
		MemberName:   `Ada "The Countess" Lovelace`,
		MemberMobile: "",
		CallStatus:   CallStatusScheduled,
		StaffName:    "",
	}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tasks); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\r\n")
	wantHeader := `"S.No","Date","Time","Call Type","Member Name","Member Mobile","Call Status","Staff Name"`
	if lines[0] != wantHeader {
		t.Fatalf("unexpected header %s", lines[0])
	}
	wantRow := `"1","10/03/2024","09:00 AM","renewal-call","Ada ""The Countess"" Lovelace","N/A","scheduled","N/A"`
	if lines[1] != wantRow {
		t.Fatalf("unexpected row %s", lines[1])
	}
}

func TestExportRoundTripMatchesListView(t *testing.T) {
	at9 := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	followUps := []UnifiedTask{
		FromFollowUp(FollowUpRecord{ID: uuid.New(), CallType: CallTypeRenewal, DueDate: at9.Add(2 * time.Hour)},
			Contact{Name: "Ada Lovelace", Phone: "+31611111111"}, "Grace Hopper", time.UTC),
	}
	enquiries := []UnifiedTask{
		FromEnquiry(EnquiryRecord{ID: uuid.New(), Name: "Lin", FollowUpDate: &at9, LastCallStatus: strPtr("busy")}, Unassigned, time.UTC),
		FromEnquiry(EnquiryRecord{ID: uuid.New(), Name: "Sam"}, "", time.UTC),
	}
	list := Merge(followUps, enquiries)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, list); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != len(list)+1 {
		t.Fatalf("expected %d rows, got %d", len(list)+1, len(records))
	}
	for i, task := range list {
		row := records[i+1]
		if row[4] != Display(task.MemberName) || row[6] != string(task.CallStatus) {
			t.Fatalf("row %d does not match list view: %v vs %+v", i, row, task)
		}
	}
	if records[1][4] != "Lin" || records[3][4] != "Sam" || records[3][1] != NotAvailable {
		t.Fatalf("unexpected export order %v", records)
	}
}
