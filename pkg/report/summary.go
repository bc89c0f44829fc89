package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vetsforclimate/sefcarbon/pkg/calc"
)

// printer formats values with English thousand separators for display.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Summary renders a plain-text digest of the result: one line per metric
// with thousands-separated kgCO2e values, then the intensity line or a
// prompt to supply an FTE headcount when intensity is undefined.
func Summary(result *calc.EmissionResult) string {
	var b strings.Builder

	if result.ClinicName != "" {
		b.WriteString(result.ClinicName)
		if result.ReportingYear != "" {
			b.WriteString(" · ")
			b.WriteString(result.ReportingYear)
		}
		b.WriteString("\n")
	}

	for _, m := range result.Metrics() {
		if m.Name == calc.MetricScope1Anaesthetics && !result.AnaestheticsIncluded {
			printer.Fprintf(&b, "%s: not included\n", m.Name)
			continue
		}
		printer.Fprintf(&b, "%s: %.2f kgCO2e\n", m.Name, m.KgCO2e)
	}

	if result.IntensityDefined {
		printer.Fprintf(&b, "Intensity: %.2f kgCO2e per FTE\n", result.Intensity)
	} else {
		b.WriteString("Intensity: enter FTE > 0 to show intensity\n")
	}

	return b.String()
}
