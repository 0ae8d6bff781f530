package timesheet

import "github.com/shopspring/decimal"

// =============================================================================
// COUNTER FOLDING
// =============================================================================

// addDay appends a classified record and folds it into the counters.
// An early leave on a day that is already a half day does not increment
// EarlyLeaves: the same shortfall must not be penalized twice. The flag
// itself stays on the record for display and export.
func (e *EmployeeStats) addDay(rec DailyRecord) {
	e.Daily = append(e.Daily, rec)

	if !rec.RestDay {
		e.WorkingDays++
	}
	if rec.Absent {
		e.AbsentDays++
	}
	if rec.Present {
		e.PresentDays++
		e.TotalHours = e.TotalHours.Add(rec.Hours)
		if rec.HalfDay {
			e.HalfDays++
		} else {
			e.FullDays++
		}
		if rec.Late {
			e.LateMarks++
		}
		if rec.EarlyLeave && !rec.HalfDay {
			e.EarlyLeaves++
		}
	}
}

// finalize computes the derived fields. Called exactly once per employee,
// after the last of their rows has been consumed.
func (e *EmployeeStats) finalize() {
	if e.PresentDays > 0 {
		e.AvgDailyHours = e.TotalHours.Div(decimal.NewFromInt(int64(e.PresentDays)))
	} else {
		e.AvgDailyHours = decimal.Zero
		e.Status = "No Attendance"
	}
	if e.TotalFromFile == "" {
		e.TotalFromFile = FormatHours(e.TotalHours)
	}
}

// finalizeGrid is the grid-layout variant: the TOTALS cell is preserved
// verbatim even when empty, never backfilled from the computed sum.
func (e *EmployeeStats) finalizeGrid() {
	if e.PresentDays > 0 {
		e.AvgDailyHours = e.TotalHours.Div(decimal.NewFromInt(int64(e.PresentDays)))
	} else {
		e.AvgDailyHours = decimal.Zero
		e.Status = "No Attendance"
	}
}
