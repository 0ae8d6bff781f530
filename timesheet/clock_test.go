package timesheet_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/timesheet"
)

// =============================================================================
// CLOCK TIME PARSING
// =============================================================================

func TestParseClockTime_Formats(t *testing.T) {
	cases := []struct {
		in      string
		known   bool
		minutes int
	}{
		{"10:45 AM", true, 10*60 + 45},
		{"10:45AM", true, 10*60 + 45},
		{"10:45 am", true, 10*60 + 45},
		{"10:45 PM", true, 22*60 + 45},
		{"12:00 PM", true, 12 * 60}, // noon stays 12
		{"12:30 AM", true, 30},      // midnight hour wraps to 0
		{"9:05", true, 9*60 + 5},
		{"22:45", true, 22*60 + 45},
		{"22:45:30", true, 22*60 + 45}, // seconds accepted, discarded
		{"  7:15 pm  ", true, 19*60 + 15},
		{"", false, 0},
		{"-", false, 0},
		{"noon", false, 0},
		{"1045", false, 0},
	}

	for _, tc := range cases {
		got := timesheet.ParseClockTime(tc.in)
		if got.Known() != tc.known {
			t.Errorf("ParseClockTime(%q).Known() = %v, want %v", tc.in, got.Known(), tc.known)
			continue
		}
		if tc.known && got.Minutes() != tc.minutes {
			t.Errorf("ParseClockTime(%q) = %d minutes, want %d", tc.in, got.Minutes(), tc.minutes)
		}
	}
}

func TestParseClockTime_MissingIsNotMidnight(t *testing.T) {
	// GIVEN: an empty cell and a genuine midnight time
	// THEN: they must stay distinguishable
	missing := timesheet.ParseClockTime("")
	midnight := timesheet.ParseClockTime("12:00 AM")

	if missing.Known() {
		t.Fatal("empty cell should not be a known time")
	}
	if !midnight.Known() || midnight.Minutes() != 0 {
		t.Fatalf("midnight should be known 0 minutes, got known=%v minutes=%d", midnight.Known(), midnight.Minutes())
	}
}

func TestFormatClockTime(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{30, "12:30 AM"},
		{9*60 + 5, "9:05 AM"},
		{12 * 60, "12:00 PM"},
		{12*60 + 1, "12:01 PM"},
		{19 * 60, "7:00 PM"},
		{23*60 + 59, "11:59 PM"},
	}
	for _, tc := range cases {
		if got := timesheet.FormatClockTime(tc.minutes); got != tc.want {
			t.Errorf("FormatClockTime(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

// =============================================================================
// DURATION PARSING AND FORMATTING
// =============================================================================

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want decimal.Decimal
	}{
		{"8h", decimal.NewFromInt(8)},
		{"45m", decimal.NewFromFloat(0.75)},
		{"8h 15m", decimal.NewFromFloat(8.25)},
		{"8h 30m", decimal.NewFromFloat(8.5)},
		{"", decimal.Zero},
		{"-", decimal.Zero},
		{"  ", decimal.Zero},
		{"xh 30m", decimal.NewFromFloat(0.5)}, // bad token contributes 0
		{"nonsense", decimal.Zero},
	}
	for _, tc := range cases {
		got := timesheet.ParseDuration(tc.in)
		if !got.Equal(tc.want) {
			t.Errorf("ParseDuration(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.Zero, "-"},
		{decimal.NewFromInt(8), "8h"},
		{decimal.NewFromFloat(8.25), "8h 15m"},
		{decimal.NewFromFloat(7.75), "7h 45m"},
		{decimal.NewFromFloat(0.5), "0h 30m"},
	}
	for _, tc := range cases {
		if got := timesheet.FormatHours(tc.in); got != tc.want {
			t.Errorf("FormatHours(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDurationRoundTrips(t *testing.T) {
	for _, s := range []string{"8h", "8h 15m", "0h 30m", "7h 45m"} {
		if got := timesheet.FormatHours(timesheet.ParseDuration(s)); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}
