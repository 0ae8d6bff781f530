/*
Package export serializes analysis results to the CSV reports the
attendance analyzer hands downstream.

PURPOSE:
  Two fixed-layout reports: a one-line-per-employee summary table and a
  one-line-per-day report for a single employee with a trailing Summary
  block. Field order is part of the contract - downstream sheets are
  keyed by position - so both serializations must reproduce the same
  column order for the same input.

FORMATS:
  Summary:   Name, Code, Present, Full Days, Half Days, Late, Absent,
             Total Hours, Avg/Day
  Employee:  Date, Day, Clock In, Clock Out, Hours, Status
             then: blank line, "Summary", Total Hours, Present,
             Full Days, Half Days, Late Marks, Absent
*/
package export

import (
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/warp/attendance-engine/timesheet"
)

// SummaryRow is one employee line of the summary report. Tags define both
// the header text and the column order.
type SummaryRow struct {
	Name       string `csv:"Name"`
	Code       string `csv:"Code"`
	Present    int    `csv:"Present"`
	FullDays   int    `csv:"Full Days"`
	HalfDays   int    `csv:"Half Days"`
	Late       int    `csv:"Late"`
	Absent     int    `csv:"Absent"`
	TotalHours string `csv:"Total Hours"`
	AvgPerDay  string `csv:"Avg/Day"`
}

// Summary renders the all-employees table as UTF-8 CSV text. Hours are
// reported to one decimal place.
func Summary(employees []timesheet.EmployeeStats) (string, error) {
	rows := make([]SummaryRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, SummaryRow{
			Name:       e.Name,
			Code:       e.MemberCode,
			Present:    e.PresentDays,
			FullDays:   e.FullDays,
			HalfDays:   e.HalfDays,
			Late:       e.LateMarks,
			Absent:     e.AbsentDays,
			TotalHours: e.TotalHours.StringFixed(1),
			AvgPerDay:  e.AvgDailyHours.StringFixed(1),
		})
	}
	return gocsv.MarshalString(&rows)
}

// Employee renders one employee's day-by-day report. Values are
// comma-joined exactly as the analyzer has always exported them.
func Employee(e timesheet.EmployeeStats) string {
	var b strings.Builder

	writeLine := func(cells ...string) {
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}

	writeLine("Date", "Day", "Clock In", "Clock Out", "Hours", "Status")
	for _, d := range e.Daily {
		writeLine(d.Date, d.DayName, orDash(d.FirstIn), orDash(d.LastOut), d.HoursDisplay, d.StatusLabel())
	}

	writeLine()
	writeLine("Summary")
	writeLine("Total Hours", e.TotalFromFile)
	writeLine("Present", strconv.Itoa(e.PresentDays))
	writeLine("Full Days", strconv.Itoa(e.FullDays))
	writeLine("Half Days", strconv.Itoa(e.HalfDays))
	writeLine("Late Marks", strconv.Itoa(e.LateMarks))
	writeLine("Absent", strconv.Itoa(e.AbsentDays))

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
