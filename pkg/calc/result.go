package calc

// Line is one activity's contribution to the total: the resolved factor
// and the quantity × factor product in kgCO2e. Subcategory is empty for
// the electricity line.
type Line struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	State       string  `json:"state,omitempty"`
	Quantity    float64 `json:"quantity"`
	Factor      float64 `json:"factor"`
	KgCO2e      float64 `json:"kg_co2e"`
}

// EmissionResult is the full outcome of one calculation. It is produced
// fresh per Compute call and never mutated afterwards.
type EmissionResult struct {
	// Lines holds every individual contribution in calculation order:
	// electricity first, then fuels, then anaesthetics when included.
	Lines []Line `json:"lines"`

	Scope1Fuels        float64 `json:"scope1_fuels_kg_co2e"`
	Scope1Anaesthetics float64 `json:"scope1_anaesthetics_kg_co2e"`
	Scope1Total        float64 `json:"scope1_total_kg_co2e"`
	Scope2Total        float64 `json:"scope2_total_kg_co2e"`
	GrandTotal         float64 `json:"grand_total_kg_co2e"`

	// Intensity is GrandTotal / FTE in kgCO2e per FTE. It is only
	// meaningful when IntensityDefined is true; with FTE of zero the
	// value is 0 and the flag is false, which keeps a genuinely
	// zero-emission facility distinguishable from a missing denominator.
	Intensity        float64 `json:"intensity_kg_co2e_per_fte"`
	IntensityDefined bool    `json:"intensity_defined"`

	// AnaestheticsIncluded records the option the result was computed
	// with, so renderers can label the anaesthetic row honestly.
	AnaestheticsIncluded bool `json:"anaesthetics_included"`

	ClinicName    string `json:"clinic_name,omitempty"`
	ReportingYear string `json:"reporting_year,omitempty"`
}

// Metric is one labeled row of the presentation-facing results table.
type Metric struct {
	Name   string  `json:"metric"`
	KgCO2e float64 `json:"value_kg_co2e"`
}

// Metric row labels, in the order Metrics returns them.
const (
	MetricScope1Fuels        = "Scope 1 (fuels)"
	MetricScope1Anaesthetics = "Scope 1 (anaesthetic gases)"
	MetricScope1Total        = "Scope 1 (total)"
	MetricScope2Electricity  = "Scope 2 (electricity)"
	MetricTotal              = "Total (kgCO2e)"
)

// Metrics returns the labeled scope subtotals and grand total in
// presentation order. Intensity is not part of this table; it carries a
// different unit and is exposed by the Intensity fields directly.
func (r *EmissionResult) Metrics() []Metric {
	return []Metric{
		{Name: MetricScope1Fuels, KgCO2e: r.Scope1Fuels},
		{Name: MetricScope1Anaesthetics, KgCO2e: r.Scope1Anaesthetics},
		{Name: MetricScope1Total, KgCO2e: r.Scope1Total},
		{Name: MetricScope2Electricity, KgCO2e: r.Scope2Total},
		{Name: MetricTotal, KgCO2e: r.GrandTotal},
	}
}
