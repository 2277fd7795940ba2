package nutrition

import "strings"

// Unit is a normalized unit token. Tokens the parser does not recognize are
// kept verbatim so callers can still display them.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitOunce      Unit = "oz"
	UnitPound      Unit = "lb"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitCup        Unit = "cup"
	UnitTablespoon Unit = "tbsp"
	UnitTeaspoon   Unit = "tsp"
	UnitFluidOunce Unit = "fl oz"
	UnitScoop      Unit = "scoop"
	UnitPiece      Unit = "piece"
	UnitSlice      Unit = "slice"
	UnitServing    Unit = "serving"
)

const mlPerFluidOunce = 29.5735

// gramsPerUnit is the generic conversion table. Weight entries are exact;
// volume entries assume water density (1 ml = 1 g) and fixed household
// measures. "serving" is deliberately absent: it is resolved against the
// food record's own basis by Convert, never by table lookup.
var gramsPerUnit = map[Unit]float64{
	UnitGram:       1,
	UnitKilogram:   1000,
	UnitOunce:      28.3495,
	UnitPound:      453.592,
	UnitMilliliter: 1,
	UnitLiter:      1000,
	UnitCup:        240,
	UnitTablespoon: 15,
	UnitTeaspoon:   5,
	UnitFluidOunce: mlPerFluidOunce,
}

// volumeAssumptionUnits carry the fixed-size + water-density assumption and
// therefore degrade accuracy to low when resolved through the generic table.
var volumeAssumptionUnits = map[Unit]bool{
	UnitCup:        true,
	UnitTablespoon: true,
	UnitTeaspoon:   true,
}

var unitSynonyms = map[string]Unit{
	"g":           UnitGram,
	"gram":        UnitGram,
	"grams":       UnitGram,
	"kg":          UnitKilogram,
	"kilogram":    UnitKilogram,
	"kilograms":   UnitKilogram,
	"oz":          UnitOunce,
	"oz.":         UnitOunce,
	"ounce":       UnitOunce,
	"ounces":      UnitOunce,
	"lb":          UnitPound,
	"lbs":         UnitPound,
	"pound":       UnitPound,
	"pounds":      UnitPound,
	"ml":          UnitMilliliter,
	"milliliter":  UnitMilliliter,
	"milliliters": UnitMilliliter,
	"l":           UnitLiter,
	"liter":       UnitLiter,
	"liters":      UnitLiter,
	"litre":       UnitLiter,
	"litres":      UnitLiter,
	"cup":         UnitCup,
	"cups":        UnitCup,
	"tbsp":        UnitTablespoon,
	"tbsp.":       UnitTablespoon,
	"tbs":         UnitTablespoon,
	"tablespoon":  UnitTablespoon,
	"tablespoons": UnitTablespoon,
	"tsp":         UnitTeaspoon,
	"tsp.":        UnitTeaspoon,
	"teaspoon":    UnitTeaspoon,
	"teaspoons":   UnitTeaspoon,
	"fl oz":       UnitFluidOunce,
	"floz":        UnitFluidOunce,
	"fl-oz":       UnitFluidOunce,
	"fluid ounce": UnitFluidOunce,
	"scoop":       UnitScoop,
	"scoops":      UnitScoop,
	"piece":       UnitPiece,
	"pieces":      UnitPiece,
	"pc":          UnitPiece,
	"pcs":         UnitPiece,
	"slice":       UnitSlice,
	"slices":      UnitSlice,
	"serving":     UnitServing,
	"servings":    UnitServing,
}

// ParseUnit normalizes a raw unit token. The boolean reports whether the
// token belongs to the known vocabulary; unknown tokens come back trimmed and
// lowercased but otherwise untouched.
func ParseUnit(raw string) (Unit, bool) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if u, ok := unitSynonyms[token]; ok {
		return u, true
	}
	return Unit(token), false
}

// LookupGrams returns the generic grams-per-unit factor, or false for any
// unit outside the table. It never errors on unknown tokens.
func LookupGrams(unit Unit) (float64, bool) {
	factor, ok := gramsPerUnit[unit]
	return factor, ok
}
