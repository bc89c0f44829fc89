package factors

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `category,subcategory,unit,factor,state,source,source_year
electricity,,kWh,0.79,NSW,DCCEEW NGA,2024
electricity,,kWh,0.85,VIC,DCCEEW NGA,2024
fuel,petrol_L,L,2.31,,DCCEEW NGA,2024
fuel,natural_gas_MJ,MJ,0.0514,,DCCEEW NGA,2024
anaes,isoflurane_g,g,0.51,,peer-reviewed,2024
`

func mustLoad(t *testing.T, csvData string) *Table {
	t.Helper()
	table, err := Load([]byte(csvData), zerolog.Nop())
	require.NoError(t, err)
	return table
}

func TestLoad_ValidTable(t *testing.T) {
	table := mustLoad(t, sampleCSV)
	assert.Equal(t, 5, table.Len())

	rows := table.Rows()
	assert.Equal(t, "electricity", rows[0].Category)
	assert.Equal(t, "NSW", rows[0].State)
	assert.Equal(t, "0.79", rows[0].RawFactor)
	assert.Equal(t, "petrol_L", rows[2].Subcategory)
}

func TestLoad_MissingColumns(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantMissing []string
	}{
		{
			name:        "factor and state absent",
			header:      "category,subcategory,unit,source,source_year",
			wantMissing: []string{"factor", "state"},
		},
		{
			name:        "single column absent despite extras",
			header:      "category,subcategory,unit,factor,state,source,notes,uncertainty",
			wantMissing: []string{"source_year"},
		},
		{
			name:        "empty file",
			header:      "",
			wantMissing: []string{"category", "factor", "source", "source_year", "state", "subcategory", "unit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.header), zerolog.Nop())
			require.Error(t, err)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.ElementsMatch(t, tt.wantMissing, schemaErr.Missing)
		})
	}
}

func TestLoad_HeaderMatchingIsCaseInsensitive(t *testing.T) {
	csvData := `Category,Subcategory,Unit,Factor,State,Source,Source_Year
fuel,petrol_L,L,2.31,,DCCEEW NGA,2024
`
	table := mustLoad(t, csvData)

	val, err := table.Lookup("fuel", "petrol_L", "")
	require.NoError(t, err)
	assert.InDelta(t, 2.31, val, 1e-9)
}

func TestLoad_ExtraColumnsIgnored(t *testing.T) {
	csvData := `category,subcategory,unit,factor,state,source,source_year,uncertainty
fuel,diesel_L,L,2.68,,DCCEEW NGA,2024,0.05
`
	table := mustLoad(t, csvData)

	val, err := table.Lookup("fuel", "diesel_L", "")
	require.NoError(t, err)
	assert.InDelta(t, 2.68, val, 1e-9)
}

func TestLoad_RaggedRowsPadded(t *testing.T) {
	// Hand-edited uploads often drop trailing empty fields.
	csvData := `category,subcategory,unit,factor,state,source,source_year
fuel,petrol_L,L,2.31
`
	table := mustLoad(t, csvData)
	require.Equal(t, 1, table.Len())

	val, err := table.Lookup("fuel", "petrol_L", "")
	require.NoError(t, err)
	assert.InDelta(t, 2.31, val, 1e-9)
}

func TestLoad_DoesNotValidateFactorNumerics(t *testing.T) {
	// Numeric validation is deferred to lookup time: a malformed factor
	// only fails the calculation that requests it.
	csvData := `category,subcategory,unit,factor,state,source,source_year
fuel,petrol_L,L,TBD,,DCCEEW NGA,2024
fuel,diesel_L,L,2.68,,DCCEEW NGA,2024
`
	table := mustLoad(t, csvData)

	val, err := table.Lookup("fuel", "diesel_L", "")
	require.NoError(t, err)
	assert.InDelta(t, 2.68, val, 1e-9)

	_, err = table.Lookup("fuel", "petrol_L", "")
	var invalidErr *InvalidFactorError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "TBD", invalidErr.Raw)
	assert.Equal(t, "fuel", invalidErr.Category)
	assert.Equal(t, "petrol_L", invalidErr.Subcategory)
}

func TestLookup_StateFilter(t *testing.T) {
	table := mustLoad(t, sampleCSV)

	nsw, err := table.Lookup("electricity", "", "NSW")
	require.NoError(t, err)
	assert.InDelta(t, 0.79, nsw, 1e-9)

	vic, err := table.Lookup("electricity", "", "VIC")
	require.NoError(t, err)
	assert.InDelta(t, 0.85, vic, 1e-9)
}

func TestLookup_SkippedFiltersMatchAnyValue(t *testing.T) {
	table := mustLoad(t, sampleCSV)

	// No state filter: first electricity row in table order wins,
	// regardless of its state value.
	val, err := table.Lookup("electricity", "", "")
	require.NoError(t, err)
	assert.InDelta(t, 0.79, val, 1e-9)
}

func TestLookup_FirstMatchWins(t *testing.T) {
	csvData := `category,subcategory,unit,factor,state,source,source_year
fuel,petrol_L,L,2.31,,DCCEEW NGA,2024
fuel,petrol_L,L,9.99,,stale duplicate,2019
`
	table := mustLoad(t, csvData)

	val, err := table.Lookup("fuel", "petrol_L", "")
	require.NoError(t, err)
	assert.InDelta(t, 2.31, val, 1e-9, "first row in table order should win")
}

func TestLookup_NotFound(t *testing.T) {
	table := mustLoad(t, sampleCSV)

	_, err := table.Lookup("fuel", "diesel_L", "")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "fuel", notFound.Category)
	assert.Equal(t, "diesel_L", notFound.Subcategory)
	assert.Empty(t, notFound.State)
	assert.Contains(t, notFound.Error(), "diesel_L")
}

func TestLookup_NonFiniteFactorsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"nan", "NaN"},
		{"positive infinity", "+Inf"},
		{"negative infinity", "-Inf"},
		{"empty", ""},
		{"units embedded", "2.31 kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csvData := "category,subcategory,unit,factor,state,source,source_year\n" +
				"fuel,petrol_L,L," + tt.raw + ",,DCCEEW NGA,2024\n"
			table := mustLoad(t, csvData)

			_, err := table.Lookup("fuel", "petrol_L", "")
			var invalidErr *InvalidFactorError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, tt.raw, invalidErr.Raw)
		})
	}
}

func TestLookup_ErrorTypesAreDistinguishable(t *testing.T) {
	table := mustLoad(t, sampleCSV)

	_, err := table.Lookup("fuel", "diesel_L", "")
	var invalidErr *InvalidFactorError
	assert.False(t, errors.As(err, &invalidErr),
		"missing row must not report as an invalid factor")
}
