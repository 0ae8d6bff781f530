package timesheet

import (
	"sort"
	"strings"
	"time"
)

// =============================================================================
// DATE LABEL ORDERING
// =============================================================================

// dateLayouts covers the label shapes seen across the source exports.
// Date labels are preserved verbatim on records; parsing here serves only
// chronological ordering and weekday derivation.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2",
	"Jan 2",
}

// parseDateLabel attempts to parse a human date label. Failure is not an
// error: an unparsable label keeps its input position during ordering.
func parseDateLabel(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// weekdayName derives the full weekday label ("Sunday") from a date
// label, or "" when the label cannot be parsed.
func weekdayName(dateLabel string) string {
	t, ok := parseDateLabel(dateLabel)
	if !ok {
		return ""
	}
	return t.Weekday().String()
}

// sortDateLabels orders the parsable labels chronologically, writing them
// back into the positions they occupied. Unparsable labels stay pinned at
// their input positions; a comparator skipping them would not be a strict
// weak ordering and could leave parsable dates unordered.
func sortDateLabels(labels []string) {
	type parsed struct {
		label string
		t     time.Time
	}
	var dated []parsed
	var positions []int
	for i, label := range labels {
		if t, ok := parseDateLabel(label); ok {
			dated = append(dated, parsed{label: label, t: t})
			positions = append(positions, i)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].t.Before(dated[j].t)
	})
	for i, d := range dated {
		labels[positions[i]] = d.label
	}
}
