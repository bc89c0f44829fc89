package calc

import (
	"fmt"
	"math"
)

// ActivityInput carries the caller-supplied quantities for one calculation
// request. Quantities are nonnegative reals in the unit named by the field.
// ClinicName and ReportingYear are provenance labels only; they are echoed
// into the result and never enter the arithmetic.
type ActivityInput struct {
	// Region is the state or territory code used for the grid electricity
	// factor lookup. Must be one of Regions.
	Region string

	// FTE is the full-time-equivalent headcount used for the intensity
	// denominator. Zero is valid and leaves intensity undefined.
	FTE float64

	ElectricityKWh float64

	PetrolL      float64
	DieselL      float64
	LPGL         float64
	NaturalGasMJ float64

	IsofluraneG   float64
	SevofluraneG  float64
	DesfluraneG   float64
	NitrousOxideG float64

	ClinicName    string
	ReportingYear string
}

// Validate checks the input before any factor lookups happen. It returns
// an error describing the first problem found: an unknown region, or a
// negative or non-finite quantity.
func (in ActivityInput) Validate() error {
	if !ValidRegion(in.Region) {
		return fmt.Errorf("unknown region %q: must be one of %v", in.Region, Regions)
	}

	quantities := []struct {
		name  string
		value float64
	}{
		{"fte", in.FTE},
		{"electricity_kwh", in.ElectricityKWh},
		{"petrol_l", in.PetrolL},
		{"diesel_l", in.DieselL},
		{"lpg_l", in.LPGL},
		{"natural_gas_mj", in.NaturalGasMJ},
		{"isoflurane_g", in.IsofluraneG},
		{"sevoflurane_g", in.SevofluraneG},
		{"desflurane_g", in.DesfluraneG},
		{"n2o_g", in.NitrousOxideG},
	}
	for _, q := range quantities {
		if math.IsNaN(q.value) || math.IsInf(q.value, 0) {
			return fmt.Errorf("%s must be a finite number", q.name)
		}
		if q.value < 0 {
			return fmt.Errorf("%s must be nonnegative, got %v", q.name, q.value)
		}
	}
	return nil
}
