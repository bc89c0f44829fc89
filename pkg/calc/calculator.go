package calc

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vetsforclimate/sefcarbon/pkg/factors"
)

// Calculator computes emission results against one factor table. It holds
// no mutable state: the same Calculator may serve any number of concurrent
// Compute calls.
type Calculator struct {
	table  *factors.Table
	logger zerolog.Logger
}

// NewCalculator returns a Calculator bound to the given factor table.
func NewCalculator(table *factors.Table, logger zerolog.Logger) *Calculator {
	return &Calculator{
		table:  table,
		logger: logger,
	}
}

// Compute performs the full lookup-multiply-sum aggregation for one
// activity input.
//
// Every consumed subcategory triggers exactly one factor lookup, including
// those whose quantity is zero: factor completeness is validated whether or
// not the activity is used, so a broken table surfaces immediately rather
// than on the first nonzero entry. The one exception is the anaesthetic
// group, which is skipped entirely (lookups included) when
// opts.IncludeAnaesthetics is false.
//
// Any lookup failure aborts the calculation; no partial result is
// returned. The error unwraps to *factors.NotFoundError or
// *factors.InvalidFactorError carrying the exact failing key.
func (c *Calculator) Compute(input ActivityInput, opts Options) (*EmissionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid activity input: %w", err)
	}

	calcID := uuid.NewString()
	logger := c.logger.With().Str("calculation_id", calcID).Logger()
	logger.Debug().
		Str("region", input.Region).
		Bool("include_anaesthetics", opts.IncludeAnaesthetics).
		Msg("starting emission calculation")

	result := &EmissionResult{
		AnaestheticsIncluded: opts.IncludeAnaesthetics,
		ClinicName:           input.ClinicName,
		ReportingYear:        input.ReportingYear,
	}

	electricity, err := c.line(result, CategoryElectricity, "", input.Region, input.ElectricityKWh)
	if err != nil {
		return nil, err
	}
	result.Scope2Total = electricity

	fuelQuantities := []struct {
		subcategory string
		quantity    float64
	}{
		{SubcategoryPetrol, input.PetrolL},
		{SubcategoryDiesel, input.DieselL},
		{SubcategoryLPG, input.LPGL},
		{SubcategoryNaturalGas, input.NaturalGasMJ},
	}
	for _, f := range fuelQuantities {
		kg, err := c.line(result, CategoryFuel, f.subcategory, "", f.quantity)
		if err != nil {
			return nil, err
		}
		result.Scope1Fuels += kg
	}

	if opts.IncludeAnaesthetics {
		anaesQuantities := []struct {
			subcategory string
			quantity    float64
		}{
			{SubcategoryIsoflurane, input.IsofluraneG},
			{SubcategorySevoflurane, input.SevofluraneG},
			{SubcategoryDesflurane, input.DesfluraneG},
			{SubcategoryNitrousOxide, input.NitrousOxideG},
		}
		for _, a := range anaesQuantities {
			kg, err := c.line(result, CategoryAnaesthetic, a.subcategory, "", a.quantity)
			if err != nil {
				return nil, err
			}
			result.Scope1Anaesthetics += kg
		}
	}

	result.Scope1Total = result.Scope1Fuels + result.Scope1Anaesthetics
	result.GrandTotal = result.Scope1Total + result.Scope2Total

	if input.FTE > 0 {
		result.Intensity = result.GrandTotal / input.FTE
		result.IntensityDefined = true
	}

	logger.Debug().
		Float64("scope1_kg_co2e", result.Scope1Total).
		Float64("scope2_kg_co2e", result.Scope2Total).
		Float64("total_kg_co2e", result.GrandTotal).
		Msg("emission calculation complete")
	return result, nil
}

// line resolves one factor, appends the contribution to the result, and
// returns it in kgCO2e.
func (c *Calculator) line(result *EmissionResult, category, subcategory, state string, quantity float64) (float64, error) {
	factor, err := c.table.Lookup(category, subcategory, state)
	if err != nil {
		return 0, err
	}
	kg := quantity * factor
	result.Lines = append(result.Lines, Line{
		Category:    category,
		Subcategory: subcategory,
		State:       state,
		Quantity:    quantity,
		Factor:      factor,
		KgCO2e:      kg,
	})
	return kg, nil
}

// Compute is a convenience for one-shot use: it builds a Calculator over
// table with a no-op logger and runs the calculation.
func Compute(table *factors.Table, input ActivityInput, opts Options) (*EmissionResult, error) {
	return NewCalculator(table, zerolog.Nop()).Compute(input, opts)
}
