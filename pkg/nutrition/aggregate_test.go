package nutrition_test

import (
	"math"
	"testing"

	"Fitlog-Backend/pkg/nutrition"
)

func convertAndScale(t *testing.T, quantity float64, unit string, food *nutrition.FoodRecord) nutrition.Item {
	t.Helper()
	res, err := nutrition.Convert(quantity, unit, food)
	if err != nil {
		t.Fatalf("convert %s: %v", food.Name, err)
	}
	scaled, err := nutrition.Scale(food, res.Grams)
	if err != nil {
		t.Fatalf("scale %s: %v", food.Name, err)
	}
	return nutrition.Item{FoodName: food.Name, Conversion: res, Nutrition: scaled}
}

func TestAggregateMixedEntry(t *testing.T) {
	t.Parallel()
	oatmeal := &nutrition.FoodRecord{
		Name:        "Oatmeal Cooked",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    ptr(71),
	}
	whey := &nutrition.FoodRecord{
		Name:        "Whey Isolate",
		ServingSize: 30,
		ServingUnit: "g",
		Calories:    ptr(120),
		ProteinG:    ptr(24),
		ScoopSizeG:  ptr(30),
	}
	syrup := &nutrition.FoodRecord{
		Name:        "Maple Syrup",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    ptr(260),
	}

	items := []nutrition.Item{
		convertAndScale(t, 1.5, "cup", oatmeal),
		convertAndScale(t, 2, "scoop", whey),
		convertAndScale(t, 15, "g", syrup),
	}

	// Generic cup: 1.5 * 240 = 360 g -> 71 * 3.6 = 255.6 -> 256 kcal.
	if *items[0].Nutrition.Calories != 256 {
		t.Fatalf("expected 256 calories for oatmeal, got %v", *items[0].Nutrition.Calories)
	}

	total := nutrition.Aggregate(items)

	if math.Abs(total.Calories-535) > 0.001 {
		t.Fatalf("expected 535 total calories, got %.2f", total.Calories)
	}
	if math.Abs(total.ProteinG-48) > 0.1 {
		t.Fatalf("expected 48 g protein, got %.2f", total.ProteinG)
	}
	if !total.Estimated {
		t.Fatalf("entry with a low-accuracy item must be estimated")
	}
	if len(total.Caveats) != 1 || total.Caveats[0] != nutrition.CaveatVolumeAssumption {
		t.Fatalf("expected exactly the volume-assumption caveat, got %v", total.Caveats)
	}
}

func TestAggregateAllHighAccuracyIsNotEstimated(t *testing.T) {
	t.Parallel()
	whey := &nutrition.FoodRecord{
		Name:        "Whey Isolate",
		ServingSize: 30,
		ServingUnit: "g",
		Calories:    ptr(120),
		ProteinG:    ptr(24),
		ScoopSizeG:  ptr(30),
	}
	items := []nutrition.Item{
		convertAndScale(t, 60, "g", whey),
		convertAndScale(t, 1, "scoop", whey),
		convertAndScale(t, 1, "serving", whey),
	}
	total := nutrition.Aggregate(items)
	if total.Estimated {
		t.Fatalf("all-high entry must not be estimated: %v", total.Caveats)
	}
	if len(total.Caveats) != 0 {
		t.Fatalf("expected no caveats, got %v", total.Caveats)
	}
	if total.Calories != 480 {
		t.Fatalf("expected 480 calories, got %.2f", total.Calories)
	}
}

func TestAggregateUnknownUnitCaveat(t *testing.T) {
	t.Parallel()
	food := chickenBreast()
	res, err := nutrition.Convert(40, "handful", food)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	scaled, err := nutrition.Scale(food, res.Grams)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	total := nutrition.Aggregate([]nutrition.Item{
		{FoodName: food.Name, Conversion: res, Nutrition: scaled},
	})
	if !total.Estimated {
		t.Fatalf("unknown-unit item must mark the entry estimated")
	}
	if len(total.Caveats) != 1 || total.Caveats[0] != nutrition.CaveatUnknownUnit {
		t.Fatalf("expected unknown-unit caveat, got %v", total.Caveats)
	}
}

func TestAggregateMissingFoodContributesNothing(t *testing.T) {
	t.Parallel()
	items := []nutrition.Item{
		convertAndScale(t, 100, "g", chickenBreast()),
		{FoodName: "dragonfruit smoothie", MissingFood: true},
	}
	total := nutrition.Aggregate(items)
	if total.Calories != 165 {
		t.Fatalf("unmatched item must not contribute, got %.2f calories", total.Calories)
	}
	if !total.Estimated {
		t.Fatalf("entry with unmatched food must be estimated")
	}
	if len(total.Caveats) != 1 || total.Caveats[0] != nutrition.CaveatMissingFood {
		t.Fatalf("expected missing-food caveat, got %v", total.Caveats)
	}
}

func TestAggregateInvalidQuantityContributesNothing(t *testing.T) {
	t.Parallel()
	items := []nutrition.Item{
		convertAndScale(t, 100, "g", chickenBreast()),
		{FoodName: "phantom snack", InvalidQuantity: true},
	}
	total := nutrition.Aggregate(items)
	if total.Calories != 165 {
		t.Fatalf("invalid item must not contribute, got %.2f calories", total.Calories)
	}
	if !total.Estimated {
		t.Fatalf("entry with a rejected item must be estimated")
	}
	if len(total.Caveats) != 1 || total.Caveats[0] != nutrition.CaveatInvalidQuantity {
		t.Fatalf("expected invalid-quantity caveat, got %v", total.Caveats)
	}
}

func TestAggregateCaveatsDedupedInsertionOrder(t *testing.T) {
	t.Parallel()
	oatmeal := &nutrition.FoodRecord{
		Name:        "Oatmeal Cooked",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    ptr(71),
	}
	items := []nutrition.Item{
		convertAndScale(t, 1, "cup", oatmeal),
		convertAndScale(t, 2, "cup", oatmeal),
		convertAndScale(t, 1, "handful", oatmeal),
		{FoodName: "unknown thing", MissingFood: true},
		convertAndScale(t, 3, "tbsp", oatmeal),
	}
	total := nutrition.Aggregate(items)
	want := []string{
		nutrition.CaveatVolumeAssumption,
		nutrition.CaveatUnknownUnit,
		nutrition.CaveatMissingFood,
	}
	if len(total.Caveats) != len(want) {
		t.Fatalf("expected %d caveats, got %v", len(want), total.Caveats)
	}
	for i := range want {
		if total.Caveats[i] != want[i] {
			t.Fatalf("caveat %d: expected %q, got %q", i, want[i], total.Caveats[i])
		}
	}
}

func TestAggregateDegradedBasisMarksEstimated(t *testing.T) {
	t.Parallel()
	bad := &nutrition.FoodRecord{
		Name:        "Corrupt Row",
		ServingSize: 0,
		ServingUnit: "g",
		Calories:    ptr(100),
	}
	items := []nutrition.Item{convertAndScale(t, 50, "g", bad)}
	total := nutrition.Aggregate(items)
	if !total.Estimated {
		t.Fatalf("zero serving basis must mark the entry estimated")
	}
	if total.Calories != 0 {
		t.Fatalf("degraded item must contribute zero, got %.2f", total.Calories)
	}
}

func TestAggregateEmptyEntry(t *testing.T) {
	t.Parallel()
	total := nutrition.Aggregate(nil)
	if total.Estimated || total.Calories != 0 || len(total.Caveats) != 0 {
		t.Fatalf("empty entry must produce zero, non-estimated totals: %+v", total)
	}
}
