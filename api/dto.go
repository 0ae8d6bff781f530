/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-typed domain model from the external API contract:
  hours cross the wire as plain JSON numbers, flags keep the field names
  the analyzer's front end has always consumed (isPresent, isRestDay, ...).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/rules.go: RuleSettings, reused directly as the rules payload
*/
package api

import (
	"github.com/warp/attendance-engine/timesheet"
)

// DailyRecordDTO is one classified day in API responses.
type DailyRecordDTO struct {
	Date           string  `json:"date"`
	DayName        string  `json:"dayName"`
	Hours          float64 `json:"hours"`
	HoursFormatted string  `json:"hoursFormatted"`
	FirstIn        string  `json:"firstIn"`
	LastOut        string  `json:"lastOut"`
	Location       string  `json:"location"`
	Status         string  `json:"status"`
	IsPresent      bool    `json:"isPresent"`
	IsAbsent       bool    `json:"isAbsent"`
	IsRestDay      bool    `json:"isRestDay"`
	IsHalfDay      bool    `json:"isHalfDay"`
	IsLate         bool    `json:"isLate"`
	IsEarlyLeave   bool    `json:"isEarlyLeave"`
}

// EmployeeStatsDTO is one employee's analysis in API responses.
type EmployeeStatsDTO struct {
	Name          string           `json:"name"`
	MemberCode    string           `json:"memberCode"`
	FullDays      int              `json:"fullDays"`
	HalfDays      int              `json:"halfDays"`
	LateMarks     int              `json:"lateMarks"`
	EarlyLeaves   int              `json:"earlyLeaves"`
	AbsentDays    int              `json:"absentDays"`
	WorkingDays   int              `json:"workingDays"`
	PresentDays   int              `json:"presentDays"`
	TotalHours    float64          `json:"totalHours"`
	AvgDailyHours float64          `json:"avgDailyHours"`
	Status        string           `json:"status"`
	TotalFromFile string           `json:"totalFromFile"`
	DailyRecords  []DailyRecordDTO `json:"dailyRecords"`
}

// RunSummaryDTO totals the run for dashboard cards.
type RunSummaryDTO struct {
	Employees     int     `json:"employees"`
	FullDays      int     `json:"fullDays"`
	HalfDays      int     `json:"halfDays"`
	LateMarks     int     `json:"lateMarks"`
	AbsentDays    int     `json:"absentDays"`
	TotalHours    float64 `json:"totalHours"`
	AttendancePct float64 `json:"attendancePct"`
	HalfDayCuts   int     `json:"halfDayCuts"`
}

// AnalyzeResponse is the full result of one uploaded file.
type AnalyzeResponse struct {
	DetectedFormat string             `json:"detectedFormat"`
	MonthPeriod    string             `json:"monthPeriod,omitempty"`
	Summary        RunSummaryDTO      `json:"summary"`
	Employees      []EmployeeStatsDTO `json:"employees"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// DOMAIN -> DTO MAPPING
// =============================================================================

func toDailyRecordDTO(d timesheet.DailyRecord) DailyRecordDTO {
	return DailyRecordDTO{
		Date:           d.Date,
		DayName:        d.DayName,
		Hours:          d.Hours.InexactFloat64(),
		HoursFormatted: d.HoursDisplay,
		FirstIn:        d.FirstIn,
		LastOut:        d.LastOut,
		Location:       d.Location,
		Status:         d.StatusLabel(),
		IsPresent:      d.Present,
		IsAbsent:       d.Absent,
		IsRestDay:      d.RestDay,
		IsHalfDay:      d.HalfDay,
		IsLate:         d.Late,
		IsEarlyLeave:   d.EarlyLeave,
	}
}

func toEmployeeStatsDTO(e timesheet.EmployeeStats) EmployeeStatsDTO {
	daily := make([]DailyRecordDTO, 0, len(e.Daily))
	for _, d := range e.Daily {
		daily = append(daily, toDailyRecordDTO(d))
	}
	return EmployeeStatsDTO{
		Name:          e.Name,
		MemberCode:    e.MemberCode,
		FullDays:      e.FullDays,
		HalfDays:      e.HalfDays,
		LateMarks:     e.LateMarks,
		EarlyLeaves:   e.EarlyLeaves,
		AbsentDays:    e.AbsentDays,
		WorkingDays:   e.WorkingDays,
		PresentDays:   e.PresentDays,
		TotalHours:    e.TotalHours.InexactFloat64(),
		AvgDailyHours: e.AvgDailyHours.InexactFloat64(),
		Status:        e.Status,
		TotalFromFile: e.TotalFromFile,
		DailyRecords:  daily,
	}
}

func toAnalyzeResponse(result *timesheet.Result, summary timesheet.RunSummary) AnalyzeResponse {
	employees := make([]EmployeeStatsDTO, 0, len(result.Employees))
	for _, e := range result.Employees {
		employees = append(employees, toEmployeeStatsDTO(e))
	}
	return AnalyzeResponse{
		DetectedFormat: result.Format.DisplayName(),
		MonthPeriod:    result.MonthPeriod,
		Summary: RunSummaryDTO{
			Employees:     summary.Employees,
			FullDays:      summary.FullDays,
			HalfDays:      summary.HalfDays,
			LateMarks:     summary.LateMarks,
			AbsentDays:    summary.AbsentDays,
			TotalHours:    summary.TotalHours.InexactFloat64(),
			AttendancePct: summary.AttendancePct.InexactFloat64(),
			HalfDayCuts:   summary.HalfDayDeductions,
		},
		Employees: employees,
	}
}
