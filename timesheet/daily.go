/*
daily.go - Long ("monthly daily") layout parser

LAYOUT:
  One header row (Day, Date, Full Name, ..., Worked Hours, First In,
  Last Out) followed by one row per employee per date. Columns are
  located by header name, not fixed position. This is the richest
  source: it carries both worked hours and clock times, so every rule
  including the late-mark penalty applies.

KNOWN QUIRK:
  Employees are keyed by Full Name alone here, while the raw-entries
  layout keys by name plus member code. Two distinct employees sharing a
  name would silently merge in this layout. The asymmetry is preserved
  from the source exports' observed behavior; see DESIGN.md.
*/
package timesheet

import "strings"

const dailyHeaderScanRows = 5

type dailyParser struct{}

func (dailyParser) Format() FileFormat { return FormatDaily }

type dailyDay struct {
	date    string
	dayName string
	worked  string
	firstIn string
	lastOut string
}

func (dailyParser) Parse(grid RawGrid, cfg RuleConfig) (*ParseOutput, error) {
	headerIdx := -1
	for i := 0; i < dailyHeaderScanRows && i < len(grid); i++ {
		if cellAt(grid[i], 0) == "Day" && cellAt(grid[i], 1) == "Date" {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, &HeaderNotFoundError{Format: FormatDaily}
	}

	header := grid[headerIdx]
	nameIdx := indexOf(header, "Full Name")
	if nameIdx == -1 {
		return nil, &MissingColumnError{Format: FormatDaily, Column: "Full Name"}
	}
	codeIdx := indexOf(header, "Member Code")
	dateIdx := indexOf(header, "Date")
	dayIdx := indexOf(header, "Day")
	workedIdx := indexOf(header, "Worked Hours")
	firstInIdx := indexOf(header, "First In")
	lastOutIdx := indexOf(header, "Last Out")

	type employeeDays struct {
		code  string
		days  map[string]*dailyDay
		order []string
	}
	byName := make(map[string]*employeeDays)
	var nameOrder []string

	for i := headerIdx + 1; i < len(grid); i++ {
		row := grid[i]
		if len(row) < 3 {
			continue
		}

		name := strings.TrimSpace(cellAt(row, nameIdx))
		date := strings.TrimSpace(cellAt(row, dateIdx))
		if name == "" || date == "" {
			continue
		}

		emp, ok := byName[name]
		if !ok {
			// First-seen member code wins for the whole employee.
			emp = &employeeDays{
				code: strings.TrimSpace(cellAt(row, codeIdx)),
				days: make(map[string]*dailyDay),
			}
			byName[name] = emp
			nameOrder = append(nameOrder, name)
		}

		if _, seen := emp.days[date]; !seen {
			emp.order = append(emp.order, date)
		}
		emp.days[date] = &dailyDay{
			date:    date,
			dayName: strings.TrimSpace(cellAt(row, dayIdx)),
			worked:  strings.TrimSpace(cellAt(row, workedIdx)),
			firstIn: strings.TrimSpace(cellAt(row, firstInIdx)),
			lastOut: strings.TrimSpace(cellAt(row, lastOutIdx)),
		}
	}

	out := &ParseOutput{}
	for _, name := range nameOrder {
		emp := byName[name]
		stats := newEmployeeStats(name, emp.code)

		sortDateLabels(emp.order)
		for _, date := range emp.order {
			d := emp.days[date]
			stats.addDay(EvaluateDay(DayInput{
				Date:     d.date,
				DayName:  d.dayName,
				RestDay:  strings.ToLower(d.dayName) == "sunday",
				Hours:    ParseDuration(d.worked),
				FirstIn:  ParseClockTime(d.firstIn),
				LastOut:  ParseClockTime(d.lastOut),
				InLabel:  d.firstIn,
				OutLabel: d.lastOut,
			}, cfg))
		}

		stats.applyLatePenalty(cfg)
		stats.finalize()
		out.Employees = append(out.Employees, *stats)
	}
	return out, nil
}
