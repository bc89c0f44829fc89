// Package report renders emission results for the presentation layer:
// two-column delimited text for download, JSON for chart-rendering
// callers, and a formatted text summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vetsforclimate/sefcarbon/pkg/calc"
)

// IntensityMetricName labels the intensity row appended to the CSV export
// when the result's intensity is defined.
const IntensityMetricName = "Intensity (kgCO2e per FTE)"

// WriteCSV writes the results table to w as CSV with exactly two columns,
// Metric and Value_kgCO2e: the five scope metrics in presentation order,
// plus the intensity row when the result defines one. An FTE of zero
// leaves the intensity row out rather than printing a misleading zero.
func WriteCSV(w io.Writer, result *calc.EmissionResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Metric", "Value_kgCO2e"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, m := range result.Metrics() {
		if err := cw.Write([]string{m.Name, formatValue(m.KgCO2e)}); err != nil {
			return fmt.Errorf("writing row %q: %w", m.Name, err)
		}
	}
	if result.IntensityDefined {
		if err := cw.Write([]string{IntensityMetricName, formatValue(result.Intensity)}); err != nil {
			return fmt.Errorf("writing intensity row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// formatValue renders a kgCO2e value with the shortest representation that
// round-trips, so exported numbers re-import without drift.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
