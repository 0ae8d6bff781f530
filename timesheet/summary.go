package timesheet

import "github.com/shopspring/decimal"

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary totals one analysis run across all employees, for dashboard
// cards and the one-shot CLI footer.
type RunSummary struct {
	Employees         int
	FullDays          int
	HalfDays          int
	LateMarks         int
	AbsentDays        int
	TotalHours        decimal.Decimal
	AttendancePct     decimal.Decimal // mean of per-employee present/working ratios, 0-100
	HalfDayDeductions int             // half-day cuts produced by the late-mark penalty
}

// Summarize folds employee stats into run totals. The attendance percent
// averages each employee's present/working ratio (working days floored at
// one so a no-attendance employee contributes zero, not a division error).
func Summarize(employees []EmployeeStats, cfg RuleConfig) RunSummary {
	s := RunSummary{Employees: len(employees), TotalHours: decimal.Zero, AttendancePct: decimal.Zero}

	ratioSum := decimal.Zero
	for _, e := range employees {
		s.FullDays += e.FullDays
		s.HalfDays += e.HalfDays
		s.LateMarks += e.LateMarks
		s.AbsentDays += e.AbsentDays
		s.TotalHours = s.TotalHours.Add(e.TotalHours)
		s.HalfDayDeductions += LateMarkDeduction(e.LateMarks, cfg)

		working := e.WorkingDays
		if working < 1 {
			working = 1
		}
		ratioSum = ratioSum.Add(
			decimal.NewFromInt(int64(e.PresentDays)).Div(decimal.NewFromInt(int64(working))))
	}

	if len(employees) > 0 {
		s.AttendancePct = ratioSum.
			Div(decimal.NewFromInt(int64(len(employees)))).
			Mul(decimal.NewFromInt(100)).
			Round(0)
	}
	return s
}
