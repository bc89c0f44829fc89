package factors

import (
	_ "embed"
	"sync"

	"github.com/rs/zerolog"
)

// Bundled NGA 2024 factor data. Placeholder values ship with the module;
// deployments should verify against the current DCCEEW NGA publication
// before pilot use.
//
//go:embed data/nga_factors_2024.csv
var defaultFactorsCSV []byte

var (
	defaultTable     *Table
	defaultTableErr  error
	defaultTableOnce sync.Once
)

// Default returns the bundled NGA factor table, parsed once per process.
// The returned table is shared; it is immutable and safe for concurrent use.
func Default() (*Table, error) {
	defaultTableOnce.Do(func() {
		defaultTable, defaultTableErr = Load(defaultFactorsCSV, zerolog.Nop())
	})
	return defaultTable, defaultTableErr
}

// DefaultCSV returns a copy of the bundled factor data, for callers that
// want to present or re-export the factors currently in effect.
func DefaultCSV() []byte {
	out := make([]byte, len(defaultFactorsCSV))
	copy(out, defaultFactorsCSV)
	return out
}
