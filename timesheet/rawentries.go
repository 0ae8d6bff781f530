/*
rawentries.go - Event-log ("raw entries") layout parser

LAYOUT:
  Header on row 0, then one row per clock event: Full Name, Member Code,
  Date, Time, EntryType ("In"/"Out"), Duration, Clock In Location.

REDUCTION:
  Two passes. First, events fold into (employee, date) buckets: the
  earliest valid "In" time becomes the bucket's first-in (with its
  location), the latest valid "Out" time its last-out, and worked hours
  are the MAXIMUM Duration reported across the bucket's "In" rows - not
  a sum. A device that re-reports the running total on every clock-in
  would otherwise double-count the day. Second, each bucket is ordered
  chronologically and classified through the shared evaluator, then the
  late-mark penalty applies per employee.
*/
package timesheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

type rawEntriesParser struct{}

func (rawEntriesParser) Format() FileFormat { return FormatRawEntries }

type rawDay struct {
	date        string
	dayName     string
	firstIn     string
	firstInTime ClockTime
	lastOut     string
	lastOutTime ClockTime
	hours       decimal.Decimal
	location    string
}

func (rawEntriesParser) Parse(grid RawGrid, cfg RuleConfig) (*ParseOutput, error) {
	if len(grid) == 0 {
		return nil, &HeaderNotFoundError{Format: FormatRawEntries}
	}

	header := grid[0]
	nameIdx := indexOf(header, "Full Name")
	if nameIdx == -1 {
		return nil, &MissingColumnError{Format: FormatRawEntries, Column: "Full Name"}
	}
	dateIdx := indexOf(header, "Date")
	if dateIdx == -1 {
		return nil, &MissingColumnError{Format: FormatRawEntries, Column: "Date"}
	}
	codeIdx := indexOf(header, "Member Code")
	timeIdx := indexOf(header, "Time")
	typeIdx := indexOf(header, "EntryType")
	durationIdx := indexOf(header, "Duration")
	locationIdx := indexOf(header, "Clock In Location")

	type employeeBuckets struct {
		name  string
		code  string
		days  map[string]*rawDay
		order []string
	}
	byKey := make(map[string]*employeeBuckets)
	var keyOrder []string

	for i := 1; i < len(grid); i++ {
		row := grid[i]

		name := strings.TrimSpace(cellAt(row, nameIdx))
		date := cellAt(row, dateIdx)
		if name == "" || date == "" {
			continue
		}
		code := strings.TrimSpace(cellAt(row, codeIdx))

		key := name + "|" + code
		emp, ok := byKey[key]
		if !ok {
			emp = &employeeBuckets{name: name, code: code, days: make(map[string]*rawDay)}
			byKey[key] = emp
			keyOrder = append(keyOrder, key)
		}

		day, ok := emp.days[date]
		if !ok {
			day = &rawDay{
				date:    date,
				dayName: weekdayName(date),
				hours:   decimal.Zero,
			}
			emp.days[date] = day
			emp.order = append(emp.order, date)
		}

		eventTime := ParseClockTime(cellAt(row, timeIdx))
		switch cellAt(row, typeIdx) {
		case "In":
			if eventTime.Known() && (!day.firstInTime.Known() || eventTime.Minutes() < day.firstInTime.Minutes()) {
				day.firstIn = cellAt(row, timeIdx)
				day.firstInTime = eventTime
				day.location = cellAt(row, locationIdx)
			}
			// Duration only rides on "In" rows, and the largest report
			// wins: repeated in/out cycles do not accumulate.
			if d := ParseDuration(cellAt(row, durationIdx)); d.GreaterThan(day.hours) {
				day.hours = d
			}
		case "Out":
			if eventTime.Known() && eventTime.Minutes() > day.lastOutTime.Minutes() {
				day.lastOut = cellAt(row, timeIdx)
				day.lastOutTime = eventTime
			}
		}
	}

	out := &ParseOutput{}
	for _, key := range keyOrder {
		emp := byKey[key]
		stats := newEmployeeStats(emp.name, emp.code)

		sortDateLabels(emp.order)
		for _, date := range emp.order {
			d := emp.days[date]
			stats.addDay(EvaluateDay(DayInput{
				Date:     d.date,
				DayName:  d.dayName,
				RestDay:  d.dayName == "Sunday",
				Hours:    d.hours,
				FirstIn:  d.firstInTime,
				LastOut:  d.lastOutTime,
				InLabel:  d.firstIn,
				OutLabel: d.lastOut,
				Location: d.location,
			}, cfg))
		}

		stats.applyLatePenalty(cfg)
		stats.finalize()
		out.Employees = append(out.Employees, *stats)
	}
	return out, nil
}
