package nutrition

// overrideGramsPerUnit returns a food-specific grams-per-unit factor when the
// record carries a hint for the given unit. Resolution order is fixed: scoop,
// cup, density (ml / fl oz), piece, slice. Absence of a hint is not an error;
// the caller falls back to the generic table.
func overrideGramsPerUnit(unit Unit, food *FoodRecord) (float64, bool) {
	if food == nil {
		return 0, false
	}
	switch {
	case unit == UnitScoop && food.ScoopSizeG != nil:
		return *food.ScoopSizeG, true
	case unit == UnitCup && food.CupSizeG != nil:
		return *food.CupSizeG, true
	case unit == UnitMilliliter && food.DensityGPerML != nil:
		return *food.DensityGPerML, true
	case unit == UnitFluidOunce && food.DensityGPerML != nil:
		return mlPerFluidOunce * *food.DensityGPerML, true
	case unit == UnitPiece && food.PieceWeightG != nil:
		return *food.PieceWeightG, true
	case unit == UnitSlice && food.SliceWeightG != nil:
		return *food.SliceWeightG, true
	}
	return 0, false
}
