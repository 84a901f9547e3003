package nutrition

import "strings"

// Nutrient profiles are stored per 100 basis units. Mass and volume share the
// basis (1 g == 1 ml) because profiles never distinguish between them.
var unitTable = map[string]float64{
	"g":    1,
	"ml":   1,
	"kg":   1000,
	"l":    1000,
	"tbsp": 15,
	"tsp":  5,
}

// UnitFactor returns the multiplier that converts unit into basis units and
// whether the unit is known.
func UnitFactor(unit string) (float64, bool) {
	f, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 1, false
	}
	return f, true
}

// Normalize expresses quantity in basis units. Unknown or empty units are
// treated as already being in basis units.
func Normalize(quantity float64, unit string) float64 {
	f, _ := UnitFactor(unit)
	return quantity * f
}

// KnownUnits lists the units with a conversion factor.
func KnownUnits() []string {
	return []string{"g", "ml", "kg", "l", "tbsp", "tsp"}
}
