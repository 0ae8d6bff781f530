/*
grid.go - Wide ("monthly grid") layout parser

LAYOUT:
  A preamble (title, optional "Month" period row), then a header row of
  NAME, MEMBER CODE, TYPE, <date>, <date>, ..., TOTALS. The row directly
  above the header holds weekday abbreviations aligned to the date
  columns. Each payroll employee occupies one row; hours appear as
  "<N>h <N>m" cells under the date columns. Trailing summary rows close
  the table.

LIMITATION:
  This layout carries no arrival or departure times, so late marks and
  early leaves can never be detected here and the late-mark penalty never
  applies. That is a property of the source export, not of this parser.
*/
package timesheet

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	gridHeaderScanRows = 15
	gridPreambleRows   = 10
)

// monthNamePattern recognizes the date column headers ("November 01").
var monthNamePattern = regexp.MustCompile(`(?i)January|February|March|April|May|June|July|August|September|October|November|December`)

// hoursCap bounds a single day at 24 hours; grid cells are hand-edited
// and the occasional "250h" typo must not poison the totals.
var hoursCap = decimal.NewFromInt(24)

// gridTerminatorTypes mark the summary rows that end the employee block.
var gridTerminatorTypes = map[string]bool{
	"Total Hours": true,
	"Payroll":     true,
	"Regular":     true,
}

type gridParser struct{}

func (gridParser) Format() FileFormat { return FormatGrid }

type gridDateColumn struct {
	idx     int
	date    string
	dayName string
}

func (gridParser) Parse(grid RawGrid, cfg RuleConfig) (*ParseOutput, error) {
	out := &ParseOutput{}

	// Optional display-only period label in the preamble.
	for i := 0; i < gridPreambleRows && i < len(grid); i++ {
		if strings.ToLower(cellAt(grid[i], 0)) == "month" && cellAt(grid[i], 1) != "" {
			out.MonthPeriod = cellAt(grid[i], 1)
			break
		}
	}

	headerIdx := -1
	for i := 0; i < gridHeaderScanRows && i < len(grid); i++ {
		if strings.ToUpper(cellAt(grid[i], 0)) == "NAME" {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, &HeaderNotFoundError{Format: FormatGrid}
	}

	header := grid[headerIdx]
	var dayNames []string
	if headerIdx > 0 {
		dayNames = grid[headerIdx-1]
	}

	var dateCols []gridDateColumn
	totalsIdx := -1
	for i := 3; i < len(header); i++ {
		v := header[i]
		if strings.ToUpper(v) == "TOTALS" {
			totalsIdx = i
			break
		}
		if monthNamePattern.MatchString(v) {
			dateCols = append(dateCols, gridDateColumn{idx: i, date: v, dayName: cellAt(dayNames, i)})
		}
	}

	var employees []EmployeeStats
	var curr *EmployeeStats

	flush := func() {
		if curr != nil {
			curr.finalizeGrid()
			employees = append(employees, *curr)
			curr = nil
		}
	}

	for i := headerIdx + 1; i < len(grid); i++ {
		row := grid[i]
		if len(row) < 3 {
			continue
		}

		name := strings.TrimSpace(cellAt(row, 0))
		code := strings.TrimSpace(cellAt(row, 1))
		typ := strings.TrimSpace(cellAt(row, 2))

		// Trailing summary rows terminate the whole block.
		if name == "" && code == "" && gridTerminatorTypes[typ] {
			break
		}
		// Blank separator rows.
		if name == "" && code == "" && typ == "" {
			continue
		}

		// Only payroll rows carry attendance; anything else is skipped.
		if name == "" || !strings.Contains(strings.ToLower(typ), "payroll") {
			continue
		}

		flush()
		curr = newEmployeeStats(name, code)
		if totalsIdx > 0 {
			curr.TotalFromFile = cellAt(row, totalsIdx)
		}

		for _, col := range dateCols {
			hStr := cellAt(row, col.idx)
			day := strings.ToLower(col.dayName)
			isSunday := day == "sun" || day == "sunday"
			// An empty hours cell is a rest day in this layout, weekday
			// label or not.
			rest := isSunday || hStr == ""

			hours := ParseDuration(hStr)
			if hours.GreaterThan(hoursCap) {
				hours = hoursCap
			}

			display := hStr
			if display == "" {
				display = "REST"
			}

			curr.addDay(EvaluateDay(DayInput{
				Date:         col.date,
				DayName:      col.dayName,
				RestDay:      rest,
				Hours:        hours,
				HoursDisplay: display,
			}, cfg))
		}
	}
	flush()

	out.Employees = employees
	return out, nil
}
