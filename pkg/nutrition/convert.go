package nutrition

// Convert resolves a {quantity, unit} pair against a food record to grams.
// The food record may be nil for items the catalog could not match; in that
// case only grams and the generic table are usable and "serving" cannot be
// resolved.
//
// Resolution order: identity (grams), serving basis, food-specific hint,
// generic table, unknown fallback (treat the raw number as grams).
func Convert(quantity float64, rawUnit string, food *FoodRecord) (ConversionResult, error) {
	if quantity <= 0 {
		return ConversionResult{}, ErrInvalidQuantity
	}

	unit, _ := ParseUnit(rawUnit)
	if unit == "" {
		// A bare number with quantity 1 almost always means "one serving";
		// anything else is an unknown amount.
		if quantity == 1 && food != nil {
			unit = UnitServing
		} else {
			return ConversionResult{
				Grams:    quantity,
				Method:   MethodUnknownFallback,
				Accuracy: AccuracyLow,
				Unit:     unit,
			}, nil
		}
	}

	if unit == UnitGram {
		return ConversionResult{
			Grams:    quantity,
			Method:   MethodIdentity,
			Accuracy: AccuracyHigh,
			Unit:     unit,
		}, nil
	}

	if unit == UnitServing {
		if food == nil {
			return ConversionResult{}, ErrMissingFoodRecord
		}
		basisGrams, err := servingBasisGrams(food)
		if err != nil {
			return ConversionResult{}, err
		}
		// Definitionally exact: the record's own declared basis.
		return ConversionResult{
			Grams:    quantity * basisGrams,
			Method:   MethodIdentity,
			Accuracy: AccuracyHigh,
			Unit:     unit,
		}, nil
	}

	if factor, ok := overrideGramsPerUnit(unit, food); ok {
		return ConversionResult{
			Grams:    quantity * factor,
			Method:   MethodFoodSpecific,
			Accuracy: AccuracyHigh,
			Unit:     unit,
		}, nil
	}

	if factor, ok := LookupGrams(unit); ok {
		accuracy := AccuracyMedium
		if volumeAssumptionUnits[unit] {
			accuracy = AccuracyLow
		}
		return ConversionResult{
			Grams:    quantity * factor,
			Method:   MethodGenericTable,
			Accuracy: accuracy,
			Unit:     unit,
		}, nil
	}

	return ConversionResult{
		Grams:    quantity,
		Method:   MethodUnknownFallback,
		Accuracy: AccuracyLow,
		Unit:     unit,
	}, nil
}

// servingBasisGrams resolves the record's own (serving_size, serving_unit)
// pair to grams. It must never re-enter the serving branch of Convert: a
// record whose serving unit is itself "serving" is a data error, reported
// instead of looped on.
func servingBasisGrams(food *FoodRecord) (float64, error) {
	unit, _ := ParseUnit(food.ServingUnit)
	if unit == UnitServing {
		return 0, ErrSelfReferencedBasis
	}
	if unit == UnitGram || unit == "" {
		return food.ServingSize, nil
	}
	if food.ServingSize <= 0 {
		return 0, nil
	}
	if factor, ok := overrideGramsPerUnit(unit, food); ok {
		return food.ServingSize * factor, nil
	}
	if factor, ok := LookupGrams(unit); ok {
		return food.ServingSize * factor, nil
	}
	// Unknown serving unit: treat the declared size as grams.
	return food.ServingSize, nil
}
