/*
handlers.go - HTTP handlers for the attendance analyzer

PURPOSE:
  Exposes the timesheet engine over REST. Handles upload decoding, rule
  settings resolution, JSON/CSV serialization, and delegates all actual
  analysis to the pure engine.

ENDPOINTS:
  Analysis:
    POST /api/analyze                 Upload a timesheet, get stats (JSON)
    POST /api/analyze?format=csv      Same upload, summary report as CSV
    POST /api/analyze?format=csv&employee=NAME
                                      Per-employee day-by-day report as CSV

  Rules:
    GET  /api/rules                   Current saved rule settings
    PUT  /api/rules                   Validate and save rule settings

  Company data:
    GET  /api/companies               Companies with a configured CSV
    GET  /api/company-data?company=X  Stream that company's CSV

REQUEST FLOW:
  1. Decode multipart upload into a RawGrid (ingest package)
  2. Resolve rules: saved settings, overridden by form fields if present
  3. timesheet.Analyze - pure, no handler state involved
  4. Serialize as JSON or CSV

ERROR HANDLING:
  - 400: missing/invalid upload, invalid rule overrides, unknown format
  - 404: unknown company, employee not in the file
  - 422: structural parse failure (header or required column missing)
  - 500: settings store failures

SEE ALSO:
  - dto.go: response shapes
  - server.go: router and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/warp/attendance-engine/export"
	"github.com/warp/attendance-engine/factory"
	"github.com/warp/attendance-engine/ingest"
	"github.com/warp/attendance-engine/store/sqlite"
	"github.com/warp/attendance-engine/timesheet"
)

// maxUploadBytes bounds a multipart timesheet upload. Monthly exports for
// a few hundred employees stay well under this.
const maxUploadBytes = 16 << 20

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// CompanyFiles maps a display name to a CSV path served by
	// /api/company-data. Populated at startup from the data directory.
	CompanyFiles map[string]string
}

// NewHandler creates a handler backed by the given settings store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:        store,
		CompanyFiles: make(map[string]string),
	}
}

// =============================================================================
// ANALYSIS
// =============================================================================

// Analyze handles POST /api/analyze.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "expected a multipart upload with a 'file' field")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing 'file' field")
		return
	}
	defer file.Close()

	grid, err := ingest.Read(file, header.Filename)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("could not read %s: %v", header.Filename, err))
		return
	}

	cfg, err := h.resolveRules(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := timesheet.Analyze(grid, cfg)
	if errors.Is(err, timesheet.ErrUnknownFormat) {
		respondError(w, http.StatusBadRequest, "could not detect file format; check the file structure")
		return
	}
	if timesheet.IsStructural(err) {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		h.respondCSV(w, r, result)
		return
	}
	respondJSON(w, http.StatusOK, toAnalyzeResponse(result, timesheet.Summarize(result.Employees, cfg)))
}

// respondCSV writes the summary report, or one employee's report when the
// employee query parameter is present.
func (h *Handler) respondCSV(w http.ResponseWriter, r *http.Request, result *timesheet.Result) {
	if name := r.URL.Query().Get("employee"); name != "" {
		for _, e := range result.Employees {
			if e.Name == name {
				w.Header().Set("Content-Type", "text/csv; charset=utf-8")
				w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"_attendance.csv"))
				fmt.Fprint(w, export.Employee(e))
				return
			}
		}
		respondError(w, http.StatusNotFound, fmt.Sprintf("employee %q not found in file", name))
		return
	}

	csvText, err := export.Summary(result.Employees)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance_summary.csv"`)
	fmt.Fprint(w, csvText)
}

// resolveRules loads the saved settings and applies any per-request form
// overrides before converting to an engine config.
func (h *Handler) resolveRules(r *http.Request) (timesheet.RuleConfig, error) {
	settings := factory.DefaultSettings()
	if h.Store != nil {
		saved, err := h.Store.RuleSettings(r.Context())
		if err != nil {
			return timesheet.RuleConfig{}, err
		}
		settings = saved
	}

	if v := r.FormValue("late_mark_time"); v != "" {
		settings.LateMarkTime = v
	}
	if v := r.FormValue("early_leave_time"); v != "" {
		settings.EarlyLeaveTime = v
	}
	if v := r.FormValue("min_full_day_hours"); v != "" {
		settings.MinFullDayHours = v
	}
	if v := r.FormValue("grace_late_days"); v != "" {
		settings.GraceLateDays = v
	}

	return factory.ParseRuleConfig(settings)
}

// =============================================================================
// RULES SETTINGS
// =============================================================================

// GetRules handles GET /api/rules.
func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.RuleSettings(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// PutRules handles PUT /api/rules. Settings are validated by converting
// them to an engine config before they are saved.
func (h *Handler) PutRules(w http.ResponseWriter, r *http.Request) {
	var settings factory.RuleSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if _, err := factory.ParseRuleConfig(settings); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.SaveRuleSettings(r.Context(), settings); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// =============================================================================
// COMPANY DATA
// =============================================================================

// ListCompanies handles GET /api/companies. Names are sorted so the
// response is stable across requests.
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.CompanyFiles))
	for name := range h.CompanyFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	respondJSON(w, http.StatusOK, map[string][]string{"companies": names})
}

// CompanyData handles GET /api/company-data. It streams the configured
// CSV for a company so the front end can load it without a manual upload.
func (h *Handler) CompanyData(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")
	if company == "" {
		respondError(w, http.StatusBadRequest, "missing company parameter")
		return
	}

	path, ok := h.CompanyFiles[company]
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("no file configured for %s", company))
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read company CSV")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filepath.Base(path)))
	w.Write(data)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
