/*
rules.go - Attendance rule evaluation and the late-mark penalty cycle

PURPOSE:
  One shared evaluator classifies a canonical day regardless of which
  layout produced it, so threshold behavior is identical across the three
  parsers. Lateness and half-day status are independent axes: arriving
  late never by itself creates a half day, and working past the
  early-leave threshold never cancels a late mark. Only total worked
  hours decide full versus half.

THE PENALTY CYCLE:
  Employees get GraceLateDays late arrivals free; every (GraceLateDays+1)-th
  late mark converts one previously earned full day into a half day. The
  grid layout carries no arrival times, so it can never accrue late marks
  and the penalty never applies there.

SEE ALSO:
  - aggregate.go: counter folding and finalization
  - clock.go:     ClockTime comparison semantics
*/
package timesheet

import "github.com/shopspring/decimal"

// =============================================================================
// RULE CONFIG
// =============================================================================

// RuleConfig holds the business rules for one analysis run. Immutable for
// the duration of the run.
type RuleConfig struct {
	// LateMarkMinutes is the time of day (minutes since midnight) after
	// which an arrival is late. Arrival exactly at the threshold is on time.
	LateMarkMinutes int

	// EarlyLeaveMinutes is the time of day before which a departure is an
	// early leave. Departure exactly at the threshold is not early.
	EarlyLeaveMinutes int

	// MinFullDayHours is the minimum worked hours for a full day; below it
	// (but above zero) the day is a half day. Strict comparison: working
	// exactly the minimum is a full day.
	MinFullDayHours decimal.Decimal

	// GraceLateDays is the number of late marks tolerated before the next
	// one costs a half day.
	GraceLateDays int
}

// CycleLength is the repeating late-mark window: grace days plus the one
// that triggers the cut.
func (c RuleConfig) CycleLength() int { return c.GraceLateDays + 1 }

// DefaultRuleConfig mirrors the analyzer's stock settings: late after
// 11:00 AM, early leave before 7:00 PM, 7 hours for a full day, 3 grace
// late days.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		LateMarkMinutes:   11 * 60,
		EarlyLeaveMinutes: 19 * 60,
		MinFullDayHours:   decimal.NewFromInt(7),
		GraceLateDays:     3,
	}
}

// =============================================================================
// DAY EVALUATION
// =============================================================================

// DayInput is the canonical day handed to the evaluator. Parsers fill in
// RestDay themselves because each source labels weekdays differently
// (grid: "Sun"/"Sunday" abbreviations plus blank columns; daily:
// lowercase "sunday"; raw entries: derived full weekday names).
type DayInput struct {
	Date     string
	DayName  string
	RestDay  bool
	Hours    decimal.Decimal
	FirstIn  ClockTime
	LastOut  ClockTime
	InLabel  string // display form of the arrival, verbatim from source
	OutLabel string // display form of the departure, verbatim from source
	Location string
	// HoursDisplay overrides the formatted hours string when the source
	// cell should be shown verbatim (grid layout). Empty means format
	// Hours normally.
	HoursDisplay string
}

// EvaluateDay classifies one canonical day. Exactly one of RestDay,
// Absent and Present holds on the returned record; HalfDay, Late and
// EarlyLeave are only ever set on present days.
func EvaluateDay(in DayInput, cfg RuleConfig) DailyRecord {
	present := !in.RestDay && (in.Hours.IsPositive() || in.FirstIn.Known())
	absent := !in.RestDay && !present

	late := present && in.FirstIn.After(cfg.LateMarkMinutes)
	earlyLeave := present && in.LastOut.Before(cfg.EarlyLeaveMinutes)
	halfDay := present && in.Hours.IsPositive() && in.Hours.LessThan(cfg.MinFullDayHours)

	display := in.HoursDisplay
	if display == "" {
		display = FormatHours(in.Hours)
	}

	return DailyRecord{
		Date:         in.Date,
		DayName:      in.DayName,
		Hours:        in.Hours,
		HoursDisplay: display,
		FirstIn:      in.InLabel,
		LastOut:      in.OutLabel,
		Location:     in.Location,
		RestDay:      in.RestDay,
		Present:      present,
		Absent:       absent,
		HalfDay:      halfDay,
		Late:         late,
		EarlyLeave:   earlyLeave,
	}
}

// =============================================================================
// LATE-MARK PENALTY
// =============================================================================

// LateMarkDeduction computes how many half-day cuts a late-mark total
// earns under the configured cycle.
func LateMarkDeduction(lateMarks int, cfg RuleConfig) int {
	return lateMarks / cfg.CycleLength()
}

// applyLatePenalty converts every completed late-mark cycle into one
// half-day deduction against earned full days. Applied once per employee,
// after all days are classified, and only by the layouts that record
// arrival times.
func (e *EmployeeStats) applyLatePenalty(cfg RuleConfig) {
	cuts := LateMarkDeduction(e.LateMarks, cfg)
	if cuts == 0 {
		return
	}
	e.HalfDays += cuts
	e.FullDays -= cuts
	if e.FullDays < 0 {
		e.FullDays = 0
	}
}
