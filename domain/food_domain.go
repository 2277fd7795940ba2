package domain

import "errors"

var (
	MessageSuccessAddFoodRecord    = "food record added successfully"
	MessageSuccessUpdateFoodRecord = "food record updated successfully"
	MessageSuccessDeleteFoodRecord = "food record deleted successfully"
	MessageSuccessGetFoodRecords   = "food records retrieved successfully"

	MessageFailedAddFoodRecord    = "failed to add food record"
	MessageFailedUpdateFoodRecord = "failed to update food record"
	MessageFailedDeleteFoodRecord = "failed to delete food record"
	MessageFailedGetFoodRecords   = "failed to retrieve food records"

	ErrFoodRecordNotFound = errors.New("food record not found")
	ErrInvalidServingSize = errors.New("serving size must be positive")
)

type (
	AddFoodRecordRequest struct {
		Name        string  `json:"name" validate:"required"`
		Brand       string  `json:"brand" validate:"omitempty"`
		ServingSize float64 `json:"serving_size" validate:"required,gt=0"`
		ServingUnit string  `json:"serving_unit" validate:"required"`

		Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
		ProteinG *float64 `json:"protein_g" validate:"omitempty,gte=0"`
		CarbsG   *float64 `json:"carbs_g" validate:"omitempty,gte=0"`
		FatG     *float64 `json:"fat_g" validate:"omitempty,gte=0"`
		FiberG   *float64 `json:"fiber_g" validate:"omitempty,gte=0"`
		SugarG   *float64 `json:"sugar_g" validate:"omitempty,gte=0"`
		SodiumMg *float64 `json:"sodium_mg" validate:"omitempty,gte=0"`

		DensityGPerML *float64 `json:"density_g_per_ml" validate:"omitempty,gt=0"`
		CupSizeG      *float64 `json:"cup_size_g" validate:"omitempty,gt=0"`
		ScoopSizeG    *float64 `json:"scoop_size_g" validate:"omitempty,gt=0"`
		PieceWeightG  *float64 `json:"piece_weight_g" validate:"omitempty,gt=0"`
		SliceWeightG  *float64 `json:"slice_weight_g" validate:"omitempty,gt=0"`
	}

	UpdateFoodRecordRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		Brand       string  `json:"brand" validate:"omitempty"`
		ServingSize float64 `json:"serving_size" validate:"omitempty,gt=0"`
		ServingUnit string  `json:"serving_unit" validate:"omitempty"`

		Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
		ProteinG *float64 `json:"protein_g" validate:"omitempty,gte=0"`
		CarbsG   *float64 `json:"carbs_g" validate:"omitempty,gte=0"`
		FatG     *float64 `json:"fat_g" validate:"omitempty,gte=0"`
		FiberG   *float64 `json:"fiber_g" validate:"omitempty,gte=0"`
		SugarG   *float64 `json:"sugar_g" validate:"omitempty,gte=0"`
		SodiumMg *float64 `json:"sodium_mg" validate:"omitempty,gte=0"`

		DensityGPerML *float64 `json:"density_g_per_ml" validate:"omitempty,gt=0"`
		CupSizeG      *float64 `json:"cup_size_g" validate:"omitempty,gt=0"`
		ScoopSizeG    *float64 `json:"scoop_size_g" validate:"omitempty,gt=0"`
		PieceWeightG  *float64 `json:"piece_weight_g" validate:"omitempty,gt=0"`
		SliceWeightG  *float64 `json:"slice_weight_g" validate:"omitempty,gt=0"`
	}

	FoodRecordResponse struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Brand       string  `json:"brand,omitempty"`
		ServingSize float64 `json:"serving_size"`
		ServingUnit string  `json:"serving_unit"`

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
	}
)
