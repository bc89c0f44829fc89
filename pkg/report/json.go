package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/vetsforclimate/sefcarbon/pkg/calc"
)

// WriteJSON writes the full structured result to w as an indented JSON
// document: every line contribution, the scope subtotals, and the
// intensity fields. Chart-rendering callers consume this instead of the
// flattened CSV table.
func WriteJSON(w io.Writer, result *calc.EmissionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

// MarshalJSON returns the result as a compact JSON document.
func MarshalJSON(result *calc.EmissionResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return data, nil
}
