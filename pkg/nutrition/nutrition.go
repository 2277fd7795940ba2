// Package nutrition normalizes parsed food quantities to a gram basis and
// scales per-serving nutrition proportionally. All functions are pure; the
// package holds no mutable state and is safe for concurrent use.
package nutrition

import "errors"

var (
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrMissingFoodRecord   = errors.New("no food record for item")
	ErrSelfReferencedBasis = errors.New("serving unit cannot itself be \"serving\"")
)

// FoodRecord is the read-only nutrition basis delivered by the food catalog.
// Nutrient fields are nil when the source database has no value for them; a
// nil field must never be reported as a verified zero.
type FoodRecord struct {
	Name        string
	ServingSize float64
	ServingUnit string

	Calories *float64
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
	FiberG   *float64
	SugarG   *float64
	SodiumMg *float64

	// Food-specific conversion hints. When present they supersede the
	// generic unit table for the matching unit.
	DensityGPerML *float64
	CupSizeG      *float64
	ScoopSizeG    *float64
	PieceWeightG  *float64
	SliceWeightG  *float64
}

type ConversionMethod string

const (
	MethodFoodSpecific    ConversionMethod = "food_specific"
	MethodGenericTable    ConversionMethod = "generic_table"
	MethodIdentity        ConversionMethod = "identity"
	MethodUnknownFallback ConversionMethod = "unknown_fallback"
)

type Accuracy string

const (
	AccuracyHigh   Accuracy = "high"
	AccuracyMedium Accuracy = "medium"
	AccuracyLow    Accuracy = "low"
)

// ConversionResult is the outcome of resolving one {quantity, unit} pair to
// grams. Method and Accuracy are always set so callers cannot silently ignore
// a degraded conversion.
type ConversionResult struct {
	Grams    float64          `json:"grams"`
	Method   ConversionMethod `json:"conversion_method"`
	Accuracy Accuracy         `json:"accuracy_hint"`
	Unit     Unit             `json:"unit"`
}

// ScaledNutrition holds one food item's nutrition at the converted gram
// amount. Fields absent on the source record stay nil. Degraded marks the
// zero-serving-basis data error, which is recovered rather than raised.
type ScaledNutrition struct {
	ScaleFactor float64 `json:"scale_factor"`
	Degraded    bool    `json:"degraded,omitempty"`

	Calories *float64 `json:"calories,omitempty"`
	ProteinG *float64 `json:"protein_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	FatG     *float64 `json:"fat_g,omitempty"`
	FiberG   *float64 `json:"fiber_g,omitempty"`
	SugarG   *float64 `json:"sugar_g,omitempty"`
	SodiumMg *float64 `json:"sodium_mg,omitempty"`
}

// Item pairs one food line of a quick entry with its conversion outcome.
// MissingFood marks items the catalog could not match; InvalidQuantity marks
// items rejected by quantity validation. Neither kind ever carries fabricated
// nutrition and both contribute nothing to the totals.
type Item struct {
	FoodName        string
	Conversion      ConversionResult
	Nutrition       ScaledNutrition
	MissingFood     bool
	InvalidQuantity bool
}

// EntryTotal is the aggregate over all items of one quick entry. Totals treat
// absent nutrients as zero for summation only; Estimated and Caveats record
// every way the result degraded.
type EntryTotal struct {
	Calories  float64  `json:"calories"`
	ProteinG  float64  `json:"protein_g"`
	CarbsG    float64  `json:"carbs_g"`
	FatG      float64  `json:"fat_g"`
	FiberG    float64  `json:"fiber_g"`
	SugarG    float64  `json:"sugar_g"`
	SodiumMg  float64  `json:"sodium_mg"`
	Estimated bool     `json:"estimated"`
	Caveats   []string `json:"caveats,omitempty"`
}
