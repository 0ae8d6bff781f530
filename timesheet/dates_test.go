package timesheet

import (
	"reflect"
	"testing"
)

func TestWeekdayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-11-09", "Sunday"},
		{"2025/11/10", "Monday"},
		{"November 3, 2025", "Monday"},
		{"Nov 4 2025", "Tuesday"},
		{"not a date", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := weekdayName(tc.in); got != tc.want {
			t.Errorf("weekdayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSortDateLabels(t *testing.T) {
	labels := []string{"2025-11-05", "2025-11-03", "2025-11-04"}
	sortDateLabels(labels)
	want := []string{"2025-11-03", "2025-11-04", "2025-11-05"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("sortDateLabels = %v, want %v", labels, want)
	}
}

func TestSortDateLabels_UnparsablePinnedInPlace(t *testing.T) {
	// Parsable labels order chronologically even when an unparsable label
	// sits between them; the unparsable ones keep their exact positions.
	labels := []string{"mystery", "2025-11-04", "also mystery", "2025-11-03"}
	sortDateLabels(labels)

	want := []string{"mystery", "2025-11-03", "also mystery", "2025-11-04"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("sortDateLabels = %v, want %v", labels, want)
	}
}

func TestSortDateLabels_AllUnparsable(t *testing.T) {
	labels := []string{"b", "a", "c"}
	sortDateLabels(labels)
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("sortDateLabels = %v, want %v", labels, want)
	}
}
