package domain

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ExportHeader is the fixed export header row.
var ExportHeader = []string{
	"S.No",
	"Date",
	"Time",
	"Call Type",
	"Member Name",
	"Member Mobile",
	"Call Status",
	"Staff Name",
}

// ExportRow renders one task in ExportHeader order.
func ExportRow(task UnifiedTask) []string {
	return []string{
		strconv.Itoa(task.Sequence),
		Display(task.DateLabel),
		Display(task.TimeLabel),
		Display(string(task.CallType)),
		Display(task.MemberName),
		Display(task.MemberMobile),
		Display(string(task.CallStatus)),
		Display(task.StaffName),
	}
}

// WriteCSV writes the header and one row per task. Every field is quoted,
// including numbers and empty values.
func WriteCSV(w io.Writer, tasks []UnifiedTask) error {
	bw := bufio.NewWriter(w)
	if err := writeQuotedRecord(bw, ExportHeader); err != nil {
		return err
	}
	for _, task := range tasks {
		if err := writeQuotedRecord(bw, ExportRow(task)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeQuotedRecord(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}
