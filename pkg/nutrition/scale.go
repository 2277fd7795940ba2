package nutrition

import "math"

// Scale computes the record's nutrition at the given gram amount.
//
// A record declaring a zero serving basis is a data-quality problem in the
// upstream food database, not a request error: the result carries zeroed
// values for whichever nutrients the record defines, Degraded is set, and no
// division happens. Nutrients absent on the record stay absent in the result.
func Scale(food *FoodRecord, grams float64) (ScaledNutrition, error) {
	if food == nil {
		return ScaledNutrition{}, ErrMissingFoodRecord
	}
	if grams < 0 {
		return ScaledNutrition{}, ErrInvalidQuantity
	}

	basisGrams, err := servingBasisGrams(food)
	if err != nil {
		return ScaledNutrition{}, err
	}
	if basisGrams == 0 {
		out := ScaledNutrition{ScaleFactor: 0, Degraded: true}
		zero := 0.0
		if food.Calories != nil {
			out.Calories = &zero
		}
		if food.ProteinG != nil {
			out.ProteinG = &zero
		}
		if food.CarbsG != nil {
			out.CarbsG = &zero
		}
		if food.FatG != nil {
			out.FatG = &zero
		}
		if food.FiberG != nil {
			out.FiberG = &zero
		}
		if food.SugarG != nil {
			out.SugarG = &zero
		}
		if food.SodiumMg != nil {
			out.SodiumMg = &zero
		}
		return out, nil
	}

	factor := grams / basisGrams
	return ScaledNutrition{
		ScaleFactor: factor,
		Calories:    scaleCalories(food.Calories, factor),
		ProteinG:    scaleMass(food.ProteinG, factor),
		CarbsG:      scaleMass(food.CarbsG, factor),
		FatG:        scaleMass(food.FatG, factor),
		FiberG:      scaleMass(food.FiberG, factor),
		SugarG:      scaleMass(food.SugarG, factor),
		SodiumMg:    scaleMass(food.SodiumMg, factor),
	}, nil
}

// scaleCalories rounds to the nearest whole calorie.
func scaleCalories(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	out := math.Round(*v * factor)
	return &out
}

// scaleMass rounds gram and milligram amounts to one decimal place.
func scaleMass(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	out := math.Round(*v*factor*10) / 10
	return &out
}
