// Package calc computes Scope 1 and Scope 2 greenhouse-gas emissions for a
// single facility from activity quantities and an emission-factor table.
package calc

// Factor table category keys. These must match the factor data byte for
// byte; Lookup uses exact string equality.
const (
	CategoryElectricity = "electricity"
	CategoryFuel        = "fuel"
	CategoryAnaesthetic = "anaes"
)

// Fuel subcategory keys (Scope 1, combustion).
const (
	SubcategoryPetrol     = "petrol_L"
	SubcategoryDiesel     = "diesel_L"
	SubcategoryLPG        = "lpg_L"
	SubcategoryNaturalGas = "natural_gas_MJ"
)

// Anaesthetic-gas subcategory keys (Scope 1, fugitive).
const (
	SubcategoryIsoflurane   = "isoflurane_g"
	SubcategorySevoflurane  = "sevoflurane_g"
	SubcategoryDesflurane   = "desflurane_g"
	SubcategoryNitrousOxide = "n2o_g"
)

// Regions enumerates the Australian state and territory codes the
// electricity factor lookup accepts, in presentation order.
var Regions = []string{"NSW", "QLD", "VIC", "SA", "WA", "TAS", "ACT", "NT"}

// ValidRegion reports whether code is one of the supported state and
// territory codes. Matching is case-sensitive: factor data uses upper-case
// codes and the lookup is exact.
func ValidRegion(code string) bool {
	for _, r := range Regions {
		if r == code {
			return true
		}
	}
	return false
}
