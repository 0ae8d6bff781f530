package timesheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CLOCK TIME - optional minutes-since-midnight
// =============================================================================

// ClockTime is an optional time of day in minutes since midnight. Source
// timesheets use "" or "-" for missing times, which must stay distinct
// from midnight (0 minutes); the Known flag carries that distinction.
type ClockTime struct {
	mins  int
	known bool
}

// KnownClockTime builds a present value. Intended for tests and callers
// converting already-validated settings.
func KnownClockTime(minutes int) ClockTime {
	return ClockTime{mins: minutes, known: true}
}

func (c ClockTime) Known() bool  { return c.known }
func (c ClockTime) Minutes() int { return c.mins }

// After reports whether the time is known and strictly past the threshold.
func (c ClockTime) After(thresholdMinutes int) bool {
	return c.known && c.mins > thresholdMinutes
}

// Before reports whether the time is known, non-midnight, and strictly
// before the threshold. The non-midnight guard mirrors the source data,
// where a 12:00 AM departure means the clock-out was never recorded.
func (c ClockTime) Before(thresholdMinutes int) bool {
	return c.known && c.mins > 0 && c.mins < thresholdMinutes
}

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})(?::(\d{2}))?\s*(AM|PM)?`)

// ParseClockTime parses human-entered clock strings: "10:45", "10:45 AM",
// "22:45:30". Empty, "-", or anything unrecognizable yields a not-known
// value rather than an error; timesheet cells are hand-edited and a bad
// time must not fail the file.
func ParseClockTime(s string) ClockTime {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "-" {
		return ClockTime{}
	}
	m := clockPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return ClockTime{}
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return ClockTime{}
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return ClockTime{}
	}
	switch strings.ToUpper(m[4]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}
	return ClockTime{mins: hours*60 + minutes, known: true}
}

// FormatClockTime renders minutes since midnight as a 12-hour display
// string: noon is "12:00 PM", midnight "12:00 AM".
func FormatClockTime(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	hour12 := h
	if h > 12 {
		hour12 = h - 12
	} else if h == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, m, suffix)
}

// =============================================================================
// DURATIONS - "<N>h <N>m" worked-hours strings
// =============================================================================

var sixty = decimal.NewFromInt(60)

// ParseDuration converts strings like "8h", "45m" or "8h 30m" into decimal
// hours. Tokens are whitespace-separated and matched independently against
// an h/m suffix; anything unparsable contributes 0. Empty and "-" are 0.
func ParseDuration(s string) decimal.Decimal {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "-" {
		return decimal.Zero
	}
	var hours, minutes int64
	for _, token := range strings.Fields(trimmed) {
		switch {
		case strings.Contains(token, "h"):
			if v, err := strconv.ParseInt(strings.ReplaceAll(token, "h", ""), 10, 64); err == nil {
				hours = v
			}
		case strings.Contains(token, "m"):
			if v, err := strconv.ParseInt(strings.ReplaceAll(token, "m", ""), 10, 64); err == nil {
				minutes = v
			}
		}
	}
	return decimal.NewFromInt(hours).Add(decimal.NewFromInt(minutes).Div(sixty))
}

// FormatHours renders decimal hours as "<H>h <M>m", dropping the minute
// part when it rounds to zero. Exactly zero hours renders as "-", matching
// the source exports' empty-duration convention.
func FormatHours(h decimal.Decimal) string {
	if h.IsZero() {
		return "-"
	}
	whole := h.IntPart()
	mins := h.Sub(decimal.NewFromInt(whole)).Mul(sixty).Round(0).IntPart()
	if mins == 0 {
		return fmt.Sprintf("%dh", whole)
	}
	return fmt.Sprintf("%dh %dm", whole, mins)
}
