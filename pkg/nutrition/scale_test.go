package nutrition_test

import (
	"errors"
	"math"
	"testing"

	"Fitlog-Backend/pkg/nutrition"
)

func TestScaleExactProportionality(t *testing.T) {
	t.Parallel()
	food := chickenBreast()
	res, err := nutrition.Convert(200, "g", food)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	scaled, err := nutrition.Scale(food, res.Grams)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if scaled.ScaleFactor != 2.0 {
		t.Fatalf("expected scale factor 2.0, got %.4f", scaled.ScaleFactor)
	}
	if scaled.Calories == nil || *scaled.Calories != 330 {
		t.Fatalf("expected 330 calories, got %v", scaled.Calories)
	}
	if scaled.ProteinG == nil || math.Abs(*scaled.ProteinG-62.0) > 0.1 {
		t.Fatalf("expected 62.0 g protein, got %v", scaled.ProteinG)
	}
}

func TestScaleFractionalFactor(t *testing.T) {
	t.Parallel()
	syrup := &nutrition.FoodRecord{
		Name:        "Maple Syrup",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    ptr(260),
	}
	scaled, err := nutrition.Scale(syrup, 15)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if math.Abs(scaled.ScaleFactor-0.15) > 1e-9 {
		t.Fatalf("expected scale factor 0.15, got %.4f", scaled.ScaleFactor)
	}
	if scaled.Calories == nil || *scaled.Calories != 39 {
		t.Fatalf("expected 39 calories, got %v", scaled.Calories)
	}
}

func TestScaleAbsentNutrientsStayAbsent(t *testing.T) {
	t.Parallel()
	// Only calories known: an absent protein value must not come back as a
	// verified "0 g protein".
	food := &nutrition.FoodRecord{
		Name:        "Mystery Snack",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    ptr(150),
	}
	scaled, err := nutrition.Scale(food, 50)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if scaled.Calories == nil || *scaled.Calories != 75 {
		t.Fatalf("expected 75 calories, got %v", scaled.Calories)
	}
	if scaled.ProteinG != nil || scaled.CarbsG != nil || scaled.FatG != nil ||
		scaled.FiberG != nil || scaled.SugarG != nil || scaled.SodiumMg != nil {
		t.Fatalf("absent nutrients must stay absent: %+v", scaled)
	}
}

func TestScaleZeroServingBasisRecovers(t *testing.T) {
	t.Parallel()
	bad := &nutrition.FoodRecord{
		Name:        "Corrupt Row",
		ServingSize: 0,
		ServingUnit: "g",
		Calories:    ptr(200),
		ProteinG:    ptr(10),
	}
	scaled, err := nutrition.Scale(bad, 100)
	if err != nil {
		t.Fatalf("zero basis must recover, not error: %v", err)
	}
	if !scaled.Degraded {
		t.Fatalf("expected degraded result")
	}
	if scaled.Calories == nil || *scaled.Calories != 0 {
		t.Fatalf("expected zeroed calories, got %v", scaled.Calories)
	}
	if scaled.CarbsG != nil {
		t.Fatalf("absent nutrients must stay absent even when degraded")
	}
}

func TestScaleNonGramServingBasis(t *testing.T) {
	t.Parallel()
	// Nutrition declared per cup; basis resolves through the generic table.
	broth := &nutrition.FoodRecord{
		Name:        "Vegetable Broth",
		ServingSize: 1,
		ServingUnit: "cup",
		Calories:    ptr(12),
	}
	scaled, err := nutrition.Scale(broth, 480)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if math.Abs(scaled.ScaleFactor-2.0) > 1e-9 {
		t.Fatalf("expected scale factor 2.0, got %.4f", scaled.ScaleFactor)
	}
	if scaled.Calories == nil || *scaled.Calories != 24 {
		t.Fatalf("expected 24 calories, got %v", scaled.Calories)
	}
}

func TestScaleMonotonicityWithinRounding(t *testing.T) {
	t.Parallel()
	food := chickenBreast()
	single, err := nutrition.Scale(food, 70)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	double, err := nutrition.Scale(food, 140)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if math.Abs(*double.ProteinG-2**single.ProteinG) > 0.1 {
		t.Fatalf("doubling grams should double protein within rounding: %.2f vs %.2f", *single.ProteinG, *double.ProteinG)
	}
}

func TestScaleTinyAmountRoundsTowardZero(t *testing.T) {
	t.Parallel()
	food := chickenBreast()
	scaled, err := nutrition.Scale(food, 0.001)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if *scaled.Calories != 0 || *scaled.ProteinG != 0 {
		t.Fatalf("expected rounding toward zero, got cal=%v protein=%v", *scaled.Calories, *scaled.ProteinG)
	}
	if *scaled.Calories < 0 || *scaled.ProteinG < 0 {
		t.Fatalf("scaled nutrients must never be negative")
	}
}

func TestScaleMissingRecord(t *testing.T) {
	t.Parallel()
	if _, err := nutrition.Scale(nil, 100); !errors.Is(err, nutrition.ErrMissingFoodRecord) {
		t.Fatalf("expected ErrMissingFoodRecord, got %v", err)
	}
}
