// Package units provides shared constants and validation for emission
// units exposed by the API.
package units

// Unit constants. The database stores gaseous emissions in grams per
// kilogram of fuel burned.
const (
	GPerKG  = "gkg"
	KGPerKG = "kgkg"
)

// ValidUnits contains all valid unit values.
var ValidUnits = []string{GPerKG, KGPerKG}

// IsValid checks if the given unit is in the list of valid units.
func IsValid(unit string) bool {
	for _, v := range ValidUnits {
		if unit == v {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units
// for error messages.
func GetValidUnitsString() string {
	return "gkg, kgkg"
}

// ConvertEmission converts a g/kg emission value to the target units.
func ConvertEmission(valueGPerKG float64, targetUnits string) float64 {
	switch targetUnits {
	case KGPerKG:
		return valueGPerKG / 1000
	case GPerKG:
		return valueGPerKG // no conversion needed
	default:
		return valueGPerKG // default to g/kg if unknown unit
	}
}
