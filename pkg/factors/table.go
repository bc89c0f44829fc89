// Package factors loads and queries emission-factor tables in the NGA
// (National Greenhouse Accounts) CSV layout: one row per factor, keyed by
// activity category, optional subcategory, and optional state code.
package factors

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// RequiredColumns is the minimum header set a factor table must carry.
// Extra columns are allowed and ignored.
var RequiredColumns = []string{
	"category",
	"subcategory",
	"unit",
	"factor",
	"state",
	"source",
	"source_year",
}

// Row is one emission-factor record. Factor is kept as the raw string from
// the source data; numeric validation happens at lookup time so that a
// malformed value only fails the calculations that actually need it.
type Row struct {
	Category    string
	Subcategory string
	Unit        string
	RawFactor   string
	State       string
	Source      string
	SourceYear  string
}

// Table is an immutable, ordered collection of factor rows. It is safe to
// share across goroutines after Load returns; nothing mutates it.
type Table struct {
	rows   []Row
	logger zerolog.Logger
}

// Load parses a UTF-8 delimited factor table with a header row.
//
// Header names are matched case-insensitively with surrounding whitespace
// trimmed. If any of RequiredColumns is absent, Load returns a *SchemaError
// naming exactly the missing columns and no table. Rows shorter than the
// header are padded with empty fields; hand-edited uploads are frequently
// ragged and rejecting them outright helps nobody.
//
// Row order is preserved: Lookup resolves duplicate keys by taking the
// first row in table order.
func Load(data []byte, logger zerolog.Logger) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: append([]string(nil), RequiredColumns...)}
	}
	if err != nil {
		return nil, fmt.Errorf("reading factor table header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Missing: missing}
	}

	field := func(record []string, name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	t := &Table{logger: logger}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading factor table row %d: %w", line, err)
		}

		t.rows = append(t.rows, Row{
			Category:    field(record, "category"),
			Subcategory: field(record, "subcategory"),
			Unit:        field(record, "unit"),
			RawFactor:   field(record, "factor"),
			State:       field(record, "state"),
			Source:      field(record, "source"),
			SourceYear:  field(record, "source_year"),
		})
	}

	logger.Debug().Int("rows", len(t.rows)).Msg("factor table loaded")
	return t, nil
}

// Len returns the number of factor rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table's rows in original order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Lookup returns the emission factor for the given key as a float64.
//
// Matching is exact string equality. Passing an empty subcategory or state
// skips that filter entirely; it does not match rows whose field happens to
// be empty. The first matching row in table order wins when several rows
// share a key.
//
// Returns *NotFoundError when no row matches and *InvalidFactorError when
// the matched row's factor is not a finite number.
func (t *Table) Lookup(category, subcategory, state string) (float64, error) {
	for i := range t.rows {
		row := &t.rows[i]
		if row.Category != category {
			continue
		}
		if subcategory != "" && row.Subcategory != subcategory {
			continue
		}
		if state != "" && row.State != state {
			continue
		}

		val, err := strconv.ParseFloat(row.RawFactor, 64)
		if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, &InvalidFactorError{
				Raw:         row.RawFactor,
				Category:    category,
				Subcategory: subcategory,
				State:       state,
			}
		}

		t.logger.Debug().
			Str("category", category).
			Str("subcategory", subcategory).
			Str("state", state).
			Float64("factor", val).
			Msg("factor resolved")
		return val, nil
	}

	return 0, &NotFoundError{
		Category:    category,
		Subcategory: subcategory,
		State:       state,
	}
}
