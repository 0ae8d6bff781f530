package timesheet

import "strings"

// =============================================================================
// FORMAT DETECTION
// =============================================================================

// detectScanRows bounds how deep into the grid detection looks. Real
// export preambles (titles, period labels) sit within the first few rows.
const detectScanRows = 10

// DetectFormat classifies a grid into one of the three known layouts.
// Rows are scanned in order, at most detectScanRows of them; within a row
// the checks run in fixed priority grid -> daily -> rawEntries, and the
// first match anywhere terminates the scan. No match means FormatUnknown,
// which is terminal: no parser is attempted on an unknown grid.
func DetectFormat(grid RawGrid) FileFormat {
	limit := detectScanRows
	if len(grid) < limit {
		limit = len(grid)
	}
	for i := 0; i < limit; i++ {
		row := grid[i]
		if len(row) == 0 {
			continue
		}

		// Grid layout: a title marker anywhere in the row, or the
		// NAME / MEMBER CODE / TYPE header triple.
		joined := strings.ToLower(strings.Join(row, ","))
		if strings.Contains(joined, "monthly timesheet") {
			return FormatGrid
		}
		if strings.ToUpper(cellAt(row, 0)) == "NAME" &&
			strings.Contains(strings.ToUpper(cellAt(row, 1)), "MEMBER") &&
			strings.ToUpper(cellAt(row, 2)) == "TYPE" {
			return FormatGrid
		}

		// Daily layout: the long-format header carries Day/Date/Full
		// Name/First In, or opens with the Day, Date, Full Name triple.
		if rowHasAll(row, "Day", "Date", "Full Name", "First In") {
			return FormatDaily
		}
		if cellAt(row, 0) == "Day" && cellAt(row, 1) == "Date" && cellAt(row, 2) == "Full Name" {
			return FormatDaily
		}

		// Raw entries: per-event rows identified by the EntryType column.
		if rowHasAll(row, "Full Name", "EntryType") {
			return FormatRawEntries
		}
		if rowHasAll(row, "Date", "Time", "EntryType") {
			return FormatRawEntries
		}
	}
	return FormatUnknown
}

// rowHasAll reports whether every wanted value appears as an exact cell.
func rowHasAll(row []string, wanted ...string) bool {
	for _, w := range wanted {
		found := false
		for _, c := range row {
			if c == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// indexOf locates a header cell by exact match, -1 when absent.
func indexOf(row []string, name string) int {
	for i, c := range row {
		if c == name {
			return i
		}
	}
	return -1
}
