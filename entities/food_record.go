package entities

import (
	"github.com/google/uuid"
)

// FoodRecord is one row of the food catalog: nutrition declared at a
// (serving_size, serving_unit) basis, plus optional per-food conversion
// hints. Nutrient columns are nullable so an unknown value is never stored
// as a verified zero.
type FoodRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"index" json:"name"`
	Brand       string    `json:"brand,omitempty"`
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `json:"serving_unit"`

	Calories *float64 `json:"calories,omitempty"`
	ProteinG *float64 `json:"protein_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	FatG     *float64 `json:"fat_g,omitempty"`
	FiberG   *float64 `json:"fiber_g,omitempty"`
	SugarG   *float64 `json:"sugar_g,omitempty"`
	SodiumMg *float64 `json:"sodium_mg,omitempty"`

	DensityGPerML *float64 `json:"density_g_per_ml,omitempty"`
	CupSizeG      *float64 `json:"cup_size_g,omitempty"`
	ScoopSizeG    *float64 `json:"scoop_size_g,omitempty"`
	PieceWeightG  *float64 `json:"piece_weight_g,omitempty"`
	SliceWeightG  *float64 `json:"slice_weight_g,omitempty"`

	Verified bool `json:"verified"`

	Timestamp
}
