package timesheet

// =============================================================================
// LAYOUT PARSERS
// =============================================================================

// LayoutParser turns a RawGrid of one known layout into employee stats.
// All three implementations converge on the same canonical DailyRecord
// stream via EvaluateDay, so the business rules live in exactly one place.
type LayoutParser interface {
	Format() FileFormat
	Parse(grid RawGrid, cfg RuleConfig) (*ParseOutput, error)
}

// parserFor returns the parser for a detected format, or nil for unknown.
func parserFor(format FileFormat) LayoutParser {
	switch format {
	case FormatGrid:
		return gridParser{}
	case FormatDaily:
		return dailyParser{}
	case FormatRawEntries:
		return rawEntriesParser{}
	default:
		return nil
	}
}

// Analyze runs one full analysis: detect the layout, parse it, classify
// every day, aggregate per employee. It is a pure function of its inputs;
// re-running with the same grid and config yields an identical Result.
// Employees appear in source discovery order.
func Analyze(grid RawGrid, cfg RuleConfig) (*Result, error) {
	format := DetectFormat(grid)
	parser := parserFor(format)
	if parser == nil {
		return nil, ErrUnknownFormat
	}
	out, err := parser.Parse(grid, cfg)
	if err != nil {
		return nil, err
	}
	return &Result{
		Format:      format,
		MonthPeriod: out.MonthPeriod,
		Employees:   out.Employees,
	}, nil
}
