package timesheet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/attendance-engine/timesheet"
)

func TestSummarize_Empty(t *testing.T) {
	s := timesheet.Summarize(nil, defaultCfg())

	assert.Equal(t, 0, s.Employees)
	assert.True(t, s.TotalHours.IsZero())
	assert.True(t, s.AttendancePct.IsZero())
}

func TestSummarize_FoldsCounters(t *testing.T) {
	employees := []timesheet.EmployeeStats{
		{
			Name: "A. Rao", FullDays: 18, HalfDays: 2, LateMarks: 5, AbsentDays: 1,
			WorkingDays: 22, PresentDays: 21,
			TotalHours: decimal.NewFromInt(160),
		},
		{
			Name: "B. Das", FullDays: 20, HalfDays: 0, LateMarks: 1, AbsentDays: 2,
			WorkingDays: 22, PresentDays: 20,
			TotalHours: decimal.NewFromInt(155),
		},
	}

	s := timesheet.Summarize(employees, defaultCfg())

	assert.Equal(t, 2, s.Employees)
	assert.Equal(t, 38, s.FullDays)
	assert.Equal(t, 2, s.HalfDays)
	assert.Equal(t, 6, s.LateMarks)
	assert.Equal(t, 3, s.AbsentDays)
	assert.True(t, s.TotalHours.Equal(decimal.NewFromInt(315)))

	// Only A. Rao's five late marks complete a cycle (grace 3, cycle 4).
	assert.Equal(t, 1, s.HalfDayDeductions)

	// (21/22 + 20/22) / 2 * 100 = 93.18 -> 93
	assert.True(t, s.AttendancePct.Equal(decimal.NewFromInt(93)), "got %s", s.AttendancePct)
}

func TestSummarize_NoAttendanceEmployeeContributesZero(t *testing.T) {
	employees := []timesheet.EmployeeStats{
		{Name: "A. Rao", WorkingDays: 20, PresentDays: 20, TotalHours: decimal.NewFromInt(160)},
		{Name: "Ghost", WorkingDays: 0, PresentDays: 0, TotalHours: decimal.Zero},
	}

	s := timesheet.Summarize(employees, defaultCfg())

	// 100% and 0% average to 50%, with no division error on zero working days.
	assert.True(t, s.AttendancePct.Equal(decimal.NewFromInt(50)), "got %s", s.AttendancePct)
}
