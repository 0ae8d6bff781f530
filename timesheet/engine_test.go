package timesheet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/attendance-engine/timesheet"
)

func TestAnalyze_UnknownFormat(t *testing.T) {
	grid := timesheet.RawGrid{
		{"some", "unrelated", "export"},
		{"1", "2", "3"},
	}

	_, err := timesheet.Analyze(grid, defaultCfg())
	require.Error(t, err)
	assert.ErrorIs(t, err, timesheet.ErrUnknownFormat)
	assert.False(t, timesheet.IsStructural(err), "unknown format is terminal, not structural")
}

func TestAnalyze_EmptyGrid(t *testing.T) {
	_, err := timesheet.Analyze(timesheet.RawGrid{}, defaultCfg())
	assert.ErrorIs(t, err, timesheet.ErrUnknownFormat)
}

func TestAnalyze_HeaderOnlyYieldsNoEmployees(t *testing.T) {
	grid := timesheet.RawGrid{dailyHeader()}

	result, err := timesheet.Analyze(grid, defaultCfg())
	require.NoError(t, err)
	assert.Equal(t, timesheet.FormatDaily, result.Format)
	assert.Empty(t, result.Employees)
}

func TestAnalyze_Deterministic(t *testing.T) {
	// GIVEN: a raw-entries grid with events deliberately out of order,
	// exercising map-backed bucketing in the parser
	grid := timesheet.RawGrid{
		rawHeader(),
		{"B. Das", "EMP-02", "2025-11-04", "10:00 AM", "In", "8h", "HQ"},
		{"A. Rao", "EMP-01", "2025-11-03", "11:30 AM", "In", "6h", "HQ"},
		{"A. Rao", "EMP-01", "2025-11-04", "10:00 AM", "In", "8h", "Annex"},
		{"B. Das", "EMP-02", "2025-11-03", "7:15 PM", "Out", "", ""},
		{"B. Das", "EMP-02", "2025-11-03", "10:15 AM", "In", "8h", "HQ"},
	}

	first, err := timesheet.Analyze(grid, defaultCfg())
	require.NoError(t, err)

	// THEN: ten re-runs produce byte-for-byte identical results
	for i := 0; i < 10; i++ {
		again, err := timesheet.Analyze(grid, defaultCfg())
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d diverged", i)
	}

	// Discovery order: B. Das appeared first in the file.
	require.Len(t, first.Employees, 2)
	assert.Equal(t, "B. Das", first.Employees[0].Name)
	assert.Equal(t, "A. Rao", first.Employees[1].Name)
}

func TestAnalyze_ConfigIndependencePerRun(t *testing.T) {
	// The same grid under a stricter half-day threshold reclassifies days
	// without any state leaking between runs.
	grid := timesheet.RawGrid{
		dailyHeader(),
		{"monday", "2025-11-03", "A. Rao", "EMP-01", "7h 30m", "10:00 AM", "7:30 PM"},
	}

	lenient, err := timesheet.Analyze(grid, defaultCfg())
	require.NoError(t, err)
	assert.Equal(t, 1, lenient.Employees[0].FullDays)

	strict := defaultCfg()
	strict.MinFullDayHours = decimal.NewFromInt(14)
	strictResult, err := timesheet.Analyze(grid, strict)
	require.NoError(t, err)
	assert.Equal(t, 1, strictResult.Employees[0].HalfDays)

	// Re-running with the original config restores the original answer.
	again, err := timesheet.Analyze(grid, defaultCfg())
	require.NoError(t, err)
	assert.Equal(t, lenient, again)
}
