package factors

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from a factor table header.
// The load is fatal: callers must not proceed to lookups against a table
// that failed schema validation.
type SchemaError struct {
	// Missing lists the absent required column names, sorted.
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("factor table is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// NotFoundError reports that no row matched a lookup key. Subcategory and
// State are empty when the corresponding filter was not applied.
type NotFoundError struct {
	Category    string
	Subcategory string
	State       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no emission factor found for category=%q, subcategory=%q, state=%q",
		e.Category, e.Subcategory, e.State)
}

// InvalidFactorError reports that the first row matching a lookup key holds
// a factor value that does not parse as a finite number. Raw preserves the
// offending cell exactly as it appeared in the source data.
type InvalidFactorError struct {
	Raw         string
	Category    string
	Subcategory string
	State       string
}

func (e *InvalidFactorError) Error() string {
	return fmt.Sprintf("factor for %s/%s/%s is not numeric: %q",
		e.Category, e.Subcategory, e.State, e.Raw)
}
