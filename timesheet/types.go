/*
Package timesheet normalizes employee time-clock exports and evaluates
attendance rules over them.

PURPOSE:
  Time-clock vendors export the same month of data in several inconsistent
  tabular layouts. This package detects the layout, parses it into a
  canonical per-employee-per-day record, classifies each day against a
  configurable rule set (lateness, half-day thresholds, rest days), and
  rolls the days up into per-employee totals with a cyclical
  late-mark-to-half-day penalty.

KEY CONCEPTS IN THIS FILE (types.go):
  - RawGrid: the already-tokenized spreadsheet (rows of string cells)
  - DailyRecord: one employee, one calendar date, with derived flags
  - EmployeeStats: one employee, one analysis run, with folded counters
  - FileFormat: which of the three known layouts the grid is

DESIGN PRINCIPLES:
  1. Purity: an analysis run is a function of (RawGrid, RuleConfig) only.
     No I/O, no persistence, no state across runs.
  2. Precision: decimal.Decimal for worked hours, so threshold
     comparisons like `hours < minFullDayHours` are exact.
  3. Best effort: a malformed cell degrades that one value; only a
     missing header or column fails a parse (see errors.go).

USAGE:
  cfg := timesheet.DefaultRuleConfig()
  result, err := timesheet.Analyze(grid, cfg)
  for _, emp := range result.Employees { ... }

SEE ALSO:
  - clock.go:   clock-time and duration primitives
  - detect.go:  layout detection
  - rules.go:   per-day rule evaluation and the late-mark penalty
  - grid.go / daily.go / rawentries.go: the three layout parsers
*/
package timesheet

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// FILE FORMAT
// =============================================================================

// FileFormat identifies which known export layout a RawGrid uses.
type FileFormat string

const (
	FormatGrid       FileFormat = "monthly_grid"  // one row per employee, one column per date
	FormatDaily      FileFormat = "monthly_daily" // one row per employee per day, with clock times
	FormatRawEntries FileFormat = "raw_entries"   // one row per clock event
	FormatUnknown    FileFormat = "unknown"
)

// DisplayName returns the human-facing label for a format.
func (f FileFormat) DisplayName() string {
	switch f {
	case FormatGrid:
		return "Monthly Timesheet Grid"
	case FormatDaily:
		return "Monthly Raw Timesheet"
	case FormatRawEntries:
		return "Raw Time Entries"
	default:
		return "Unknown"
	}
}

// =============================================================================
// RAW GRID
// =============================================================================

// RawGrid is the decoded spreadsheet: ordered rows of string cells.
// Empty cells are empty strings, never absent; rows may be ragged.
type RawGrid [][]string

// cellAt returns the trimmed-as-is cell value, tolerating short rows and
// unlocated (-1) column indexes.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// =============================================================================
// DAILY RECORD - canonical per-employee-per-day structure
// =============================================================================

// DailyRecord is the format-independent record all three layout parsers
// converge to. Exactly one of RestDay, Absent, Present is true; HalfDay,
// Late and EarlyLeave are sub-flags that only hold when Present does.
type DailyRecord struct {
	Date         string // source date label, preserved verbatim
	DayName      string // weekday label; drives rest-day detection
	Hours        decimal.Decimal
	HoursDisplay string // e.g. "8h 15m", or the raw grid cell
	FirstIn      string // display time, may be empty
	LastOut      string // display time, may be empty
	Location     string // raw-entries source only

	RestDay    bool
	Present    bool
	Absent     bool
	HalfDay    bool
	Late       bool
	EarlyLeave bool
}

// StatusLabel renders the day's single display status. Precedence follows
// the flag hierarchy: rest and absence are terminal states, a half day
// outranks a plain late mark.
func (d DailyRecord) StatusLabel() string {
	switch {
	case d.RestDay:
		return "Rest"
	case d.Absent:
		return "Absent"
	case d.HalfDay:
		return "Half Day"
	case d.Late:
		return "Late"
	default:
		return "Present"
	}
}

// =============================================================================
// EMPLOYEE STATS
// =============================================================================

// EmployeeStats aggregates one employee across one analysis run. It is
// built incrementally while a parser reads rows and finalized exactly once
// after the employee's last day has been consumed.
type EmployeeStats struct {
	Name       string
	MemberCode string // may be empty; not guaranteed unique across sources

	FullDays    int
	HalfDays    int
	LateMarks   int
	EarlyLeaves int
	AbsentDays  int
	WorkingDays int // non-rest days
	PresentDays int

	TotalHours    decimal.Decimal
	AvgDailyHours decimal.Decimal // TotalHours / PresentDays, zero when no presence
	Status        string          // "Active" or "No Attendance"

	Daily []DailyRecord // chronological; ties keep input order

	// TotalFromFile preserves the grid layout's TOTALS cell verbatim. It
	// may diverge from the computed TotalHours and is never reconciled.
	TotalFromFile string
}

// newEmployeeStats constructs an empty accumulator for a newly observed
// employee key.
func newEmployeeStats(name, code string) *EmployeeStats {
	return &EmployeeStats{
		Name:          name,
		MemberCode:    code,
		TotalHours:    decimal.Zero,
		AvgDailyHours: decimal.Zero,
		Status:        "Active",
	}
}

// =============================================================================
// ANALYSIS RESULT
// =============================================================================

// Result is the output of one analysis run.
type Result struct {
	Format      FileFormat
	MonthPeriod string // display-only period label (grid layout preamble)
	Employees   []EmployeeStats
}

// ParseOutput is what a single layout parser produces.
type ParseOutput struct {
	Employees   []EmployeeStats
	MonthPeriod string
}
