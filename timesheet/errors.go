/*
errors.go - Centralized error types for the timesheet engine

PURPOSE:
  All engine error types in one place. The taxonomy separates structural
  failures (the file's shape is wrong; the parse attempt aborts and no
  partial stats are returned) from cell-level malformation (a single bad
  time or duration; resolved to a documented default and parsing
  continues - see clock.go).

ERROR CATEGORIES:
  1. Detection errors  - the grid matches no known layout
  2. Structural errors - expected header row or column is missing

USAGE:
  Callers classify with errors.Is:

    if errors.Is(err, timesheet.ErrUnknownFormat) {
        // prompt the user to re-check the file
    }

SEE ALSO:
  - detect.go: where ErrUnknownFormat originates
  - grid.go / daily.go / rawentries.go: where structural errors originate
*/
package timesheet

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownFormat is returned when no known layout matches the first
	// rows of the grid. No layout parser is attempted.
	ErrUnknownFormat = errors.New("unknown timesheet format")

	// ErrHeaderNotFound is returned when a layout's header row cannot be
	// located within its scan window.
	ErrHeaderNotFound = errors.New("header row not found")

	// ErrColumnMissing is returned when a column a layout requires is
	// absent from its header row.
	ErrColumnMissing = errors.New("required column missing")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// HeaderNotFoundError reports which layout failed to locate its header.
type HeaderNotFoundError struct {
	Format FileFormat
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: header row not found", e.Format.DisplayName())
}

func (e *HeaderNotFoundError) Unwrap() error { return ErrHeaderNotFound }

// MissingColumnError reports which required column a layout could not find.
type MissingColumnError struct {
	Format FileFormat
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: required column %q not found", e.Format.DisplayName(), e.Column)
}

func (e *MissingColumnError) Unwrap() error { return ErrColumnMissing }

// IsStructural reports whether the error aborted a parse attempt (as
// opposed to the terminal unknown-format state).
func IsStructural(err error) bool {
	return errors.Is(err, ErrHeaderNotFound) || errors.Is(err, ErrColumnMissing)
}
