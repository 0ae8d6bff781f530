/*
Package factory converts user-facing rule settings into engine rule
configurations.

PURPOSE:
  The engine consumes parsed minute/decimal values; users type strings
  ("11:00", "7", "3") into a settings panel or a .env file. This package
  owns that string-to-value conversion, using the engine's own permissive
  time primitives, so the analyzer and the CLI validate settings the same
  way.

DEFAULTS:
  Late mark after         11:00 (AM)
  Early leave before      19:00 (7:00 PM)
  Min hours for full day  7
  Grace late days         3

VALIDATION:
  Settings are configuration, not timesheet cells: a setting that fails
  to parse is a caller error and is reported, never silently defaulted.
  Empty fields fall back to the defaults above.
*/
package factory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/timesheet"
)

// RuleSettings is the raw, user-facing form of a rule configuration.
type RuleSettings struct {
	LateMarkTime    string `json:"late_mark_time"`    // "HH:MM", 24h or with AM/PM
	EarlyLeaveTime  string `json:"early_leave_time"`  // "HH:MM", 24h or with AM/PM
	MinFullDayHours string `json:"min_full_day_hours"` // decimal hours
	GraceLateDays   string `json:"grace_late_days"`    // integer
}

// DefaultSettings returns the analyzer's stock settings in raw form.
func DefaultSettings() RuleSettings {
	return RuleSettings{
		LateMarkTime:    "11:00",
		EarlyLeaveTime:  "19:00",
		MinFullDayHours: "7",
		GraceLateDays:   "3",
	}
}

// ParseRuleConfig converts raw settings into an engine RuleConfig.
// Empty fields take defaults; malformed fields are errors.
func ParseRuleConfig(s RuleSettings) (timesheet.RuleConfig, error) {
	cfg := timesheet.DefaultRuleConfig()

	if v := strings.TrimSpace(s.LateMarkTime); v != "" {
		ct := timesheet.ParseClockTime(v)
		if !ct.Known() {
			return timesheet.RuleConfig{}, fmt.Errorf("invalid late mark time %q", s.LateMarkTime)
		}
		cfg.LateMarkMinutes = ct.Minutes()
	}

	if v := strings.TrimSpace(s.EarlyLeaveTime); v != "" {
		ct := timesheet.ParseClockTime(v)
		if !ct.Known() {
			return timesheet.RuleConfig{}, fmt.Errorf("invalid early leave time %q", s.EarlyLeaveTime)
		}
		cfg.EarlyLeaveMinutes = ct.Minutes()
	}

	if v := strings.TrimSpace(s.MinFullDayHours); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || d.IsNegative() {
			return timesheet.RuleConfig{}, fmt.Errorf("invalid minimum full-day hours %q", s.MinFullDayHours)
		}
		cfg.MinFullDayHours = d
	}

	if v := strings.TrimSpace(s.GraceLateDays); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return timesheet.RuleConfig{}, fmt.Errorf("invalid grace late days %q", s.GraceLateDays)
		}
		cfg.GraceLateDays = n
	}

	return cfg, nil
}
