package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/warp/attendance-engine/ingest"
)

func TestRead_DispatchesOnExtension(t *testing.T) {
	grid, err := ingest.Read(strings.NewReader("a,b\nc,d\n"), "export.csv")
	require.NoError(t, err)
	assert.Len(t, grid, 2)

	grid, err = ingest.Read(strings.NewReader("a,b\n"), "EXPORT.CSV")
	require.NoError(t, err)
	assert.Len(t, grid, 1)

	_, err = ingest.Read(strings.NewReader("{}"), "export.json")
	assert.ErrorIs(t, err, ingest.ErrUnsupportedFile)
}

func TestReadCSV_RaggedRows(t *testing.T) {
	// Hand-edited exports routinely have short and long rows; both must
	// survive decoding untouched.
	in := "Monthly Timesheet\nMonth,November 2025\nNAME,MEMBER CODE,TYPE,November 01,TOTALS\n"

	grid, err := ingest.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, grid, 3)
	assert.Equal(t, []string{"Monthly Timesheet"}, []string(grid[0]))
	assert.Equal(t, []string{"Month", "November 2025"}, []string(grid[1]))
	assert.Len(t, grid[2], 5)
}

func TestReadCSV_LazyQuotes(t *testing.T) {
	in := "Full Name,Note\nA. Rao,said \"late\" again\n"

	grid, err := ingest.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, grid, 2)
}

func TestReadWorkbook_PrefersTimesheetSheet(t *testing.T) {
	// GIVEN: a workbook whose first sheet is a vendor cover page
	f := excelize.NewFile()
	_, err := f.NewSheet("Raw Timesheet")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Cover", "Page"}))
	require.NoError(t, f.SetSheetRow("Raw Timesheet", "A1", &[]interface{}{"Day", "Date", "Full Name"}))
	require.NoError(t, f.SetSheetRow("Raw Timesheet", "A2", &[]interface{}{"monday", "2025-11-03", "A. Rao"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	grid, err := ingest.ReadWorkbook(&buf)
	require.NoError(t, err)

	// THEN: the timesheet-looking sheet wins over the first sheet
	require.Len(t, grid, 2)
	assert.Equal(t, "Full Name", grid[0][2])
}

func TestReadWorkbook_FallsBackToFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"NAME", "MEMBER CODE", "TYPE"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	grid, err := ingest.ReadWorkbook(&buf)
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, "NAME", grid[0][0])
}

func TestReadWorkbook_Garbage(t *testing.T) {
	_, err := ingest.ReadWorkbook(strings.NewReader("not a zip archive"))
	assert.Error(t, err)
}
