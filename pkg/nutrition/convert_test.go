package nutrition_test

import (
	"errors"
	"math"
	"testing"

	"Fitlog-Backend/pkg/nutrition"
)

func ptr(v float64) *float64 { return &v }

func chickenBreast() *nutrition.FoodRecord {
	return &nutrition.FoodRecord{
		Name:        "Chicken Breast",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    ptr(165),
		ProteinG:    ptr(31),
	}
}

func TestConvertGramsIdentity(t *testing.T) {
	t.Parallel()
	res, err := nutrition.Convert(200, "g", chickenBreast())
	if err != nil {
		t.Fatalf("convert grams: %v", err)
	}
	if res.Grams != 200 {
		t.Fatalf("expected 200 g, got %.2f", res.Grams)
	}
	if res.Method != nutrition.MethodIdentity {
		t.Fatalf("expected identity method, got %s", res.Method)
	}
	if res.Accuracy != nutrition.AccuracyHigh {
		t.Fatalf("expected high accuracy, got %s", res.Accuracy)
	}
}

func TestConvertRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()
	for _, q := range []float64{0, -1, -0.5} {
		if _, err := nutrition.Convert(q, "g", chickenBreast()); !errors.Is(err, nutrition.ErrInvalidQuantity) {
			t.Fatalf("quantity %.1f: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
}

func TestConvertUnitSynonyms(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw   string
		grams float64
	}{
		{"OZ.", 28.3495},
		{"ounces", 28.3495},
		{"tbs", 15},
		{"tbsp.", 15},
		{"  Cup ", 240},
		{"lbs", 453.592},
		{"litre", 1000},
		{"floz", 29.5735},
	}
	for _, tc := range cases {
		res, err := nutrition.Convert(1, tc.raw, nil)
		if err != nil {
			t.Fatalf("convert %q: %v", tc.raw, err)
		}
		if math.Abs(res.Grams-tc.grams) > 0.001 {
			t.Fatalf("unit %q: expected %.4f g, got %.4f", tc.raw, tc.grams, res.Grams)
		}
		if res.Method != nutrition.MethodGenericTable {
			t.Fatalf("unit %q: expected generic_table, got %s", tc.raw, res.Method)
		}
	}
}

func TestConvertGenericTableAccuracy(t *testing.T) {
	t.Parallel()
	// Weight and plain volume units are medium; household volume measures
	// assume water density and a fixed size, so they are low.
	medium := []string{"kg", "oz", "lb", "ml", "l", "fl oz"}
	low := []string{"cup", "tbsp", "tsp"}
	for _, u := range medium {
		res, err := nutrition.Convert(1, u, nil)
		if err != nil {
			t.Fatalf("convert %q: %v", u, err)
		}
		if res.Accuracy != nutrition.AccuracyMedium {
			t.Fatalf("unit %q: expected medium accuracy, got %s", u, res.Accuracy)
		}
	}
	for _, u := range low {
		res, err := nutrition.Convert(1, u, nil)
		if err != nil {
			t.Fatalf("convert %q: %v", u, err)
		}
		if res.Accuracy != nutrition.AccuracyLow {
			t.Fatalf("unit %q: expected low accuracy, got %s", u, res.Accuracy)
		}
	}
}

func TestConvertScoopHint(t *testing.T) {
	t.Parallel()
	whey := &nutrition.FoodRecord{
		Name:        "Whey Isolate",
		ServingSize: 30,
		ServingUnit: "g",
		Calories:    ptr(120),
		ProteinG:    ptr(24),
		ScoopSizeG:  ptr(30),
	}
	res, err := nutrition.Convert(2, "scoop", whey)
	if err != nil {
		t.Fatalf("convert scoops: %v", err)
	}
	if res.Grams != 60 {
		t.Fatalf("expected 60 g, got %.2f", res.Grams)
	}
	if res.Method != nutrition.MethodFoodSpecific {
		t.Fatalf("expected food_specific, got %s", res.Method)
	}
	if res.Accuracy != nutrition.AccuracyHigh {
		t.Fatalf("expected high accuracy, got %s", res.Accuracy)
	}
}

func TestConvertCupHintBeatsGenericTable(t *testing.T) {
	t.Parallel()
	oats := &nutrition.FoodRecord{
		Name:        "Rolled Oats",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    ptr(379),
		CupSizeG:    ptr(90),
	}
	res, err := nutrition.Convert(1, "cup", oats)
	if err != nil {
		t.Fatalf("convert cup: %v", err)
	}
	if res.Grams != 90 {
		t.Fatalf("expected food-specific 90 g, not generic 240 g; got %.2f", res.Grams)
	}
	if res.Method != nutrition.MethodFoodSpecific {
		t.Fatalf("expected food_specific, got %s", res.Method)
	}
}

func TestConvertDensityHint(t *testing.T) {
	t.Parallel()
	milk := &nutrition.FoodRecord{
		Name:          "Whole Milk",
		ServingSize:   100,
		ServingUnit:   "g",
		Calories:      ptr(61),
		DensityGPerML: ptr(1.03),
	}

	res, err := nutrition.Convert(250, "ml", milk)
	if err != nil {
		t.Fatalf("convert ml: %v", err)
	}
	if math.Abs(res.Grams-257.5) > 0.001 {
		t.Fatalf("expected 257.5 g, got %.3f", res.Grams)
	}

	res, err = nutrition.Convert(8, "fl oz", milk)
	if err != nil {
		t.Fatalf("convert fl oz: %v", err)
	}
	if math.Abs(res.Grams-8*29.5735*1.03) > 0.01 {
		t.Fatalf("expected ~%.1f g, got %.3f", 8*29.5735*1.03, res.Grams)
	}
	if res.Method != nutrition.MethodFoodSpecific {
		t.Fatalf("expected food_specific, got %s", res.Method)
	}
}

func TestConvertPieceAndSliceHints(t *testing.T) {
	t.Parallel()
	bread := &nutrition.FoodRecord{
		Name:         "Sourdough Bread",
		ServingSize:  100,
		ServingUnit:  "g",
		Calories:     ptr(289),
		SliceWeightG: ptr(40),
	}
	res, err := nutrition.Convert(2, "slices", bread)
	if err != nil {
		t.Fatalf("convert slices: %v", err)
	}
	if res.Grams != 80 {
		t.Fatalf("expected 80 g, got %.2f", res.Grams)
	}

	egg := &nutrition.FoodRecord{
		Name:         "Egg",
		ServingSize:  50,
		ServingUnit:  "g",
		Calories:     ptr(72),
		PieceWeightG: ptr(50),
	}
	res, err = nutrition.Convert(3, "pieces", egg)
	if err != nil {
		t.Fatalf("convert pieces: %v", err)
	}
	if res.Grams != 150 {
		t.Fatalf("expected 150 g, got %.2f", res.Grams)
	}
}

func TestConvertServingUsesRecordBasis(t *testing.T) {
	t.Parallel()
	res, err := nutrition.Convert(2, "servings", chickenBreast())
	if err != nil {
		t.Fatalf("convert servings: %v", err)
	}
	if res.Grams != 200 {
		t.Fatalf("expected 200 g, got %.2f", res.Grams)
	}
	if res.Method != nutrition.MethodIdentity {
		t.Fatalf("expected identity, got %s", res.Method)
	}
	if res.Accuracy != nutrition.AccuracyHigh {
		t.Fatalf("expected high accuracy, got %s", res.Accuracy)
	}
}

func TestConvertServingWithNonGramBasis(t *testing.T) {
	t.Parallel()
	// Basis declared in cups; the record's own cup hint resolves it.
	granola := &nutrition.FoodRecord{
		Name:        "Granola",
		ServingSize: 0.5,
		ServingUnit: "cup",
		Calories:    ptr(240),
		CupSizeG:    ptr(110),
	}
	res, err := nutrition.Convert(1, "serving", granola)
	if err != nil {
		t.Fatalf("convert serving: %v", err)
	}
	if math.Abs(res.Grams-55) > 0.001 {
		t.Fatalf("expected 55 g, got %.3f", res.Grams)
	}
}

func TestConvertServingWithoutRecord(t *testing.T) {
	t.Parallel()
	if _, err := nutrition.Convert(1, "serving", nil); !errors.Is(err, nutrition.ErrMissingFoodRecord) {
		t.Fatalf("expected ErrMissingFoodRecord, got %v", err)
	}
}

func TestConvertSelfReferencedServingBasis(t *testing.T) {
	t.Parallel()
	broken := &nutrition.FoodRecord{
		Name:        "Broken Record",
		ServingSize: 1,
		ServingUnit: "serving",
		Calories:    ptr(100),
	}
	if _, err := nutrition.Convert(1, "serving", broken); !errors.Is(err, nutrition.ErrSelfReferencedBasis) {
		t.Fatalf("expected ErrSelfReferencedBasis, got %v", err)
	}
}

func TestConvertEmptyUnit(t *testing.T) {
	t.Parallel()
	// Quantity 1 with no unit reads as "one serving".
	res, err := nutrition.Convert(1, "", chickenBreast())
	if err != nil {
		t.Fatalf("convert empty unit: %v", err)
	}
	if res.Grams != 100 || res.Method != nutrition.MethodIdentity {
		t.Fatalf("expected 100 g identity, got %.2f %s", res.Grams, res.Method)
	}

	// Any other bare quantity is an unknown amount.
	res, err = nutrition.Convert(3, "", chickenBreast())
	if err != nil {
		t.Fatalf("convert empty unit: %v", err)
	}
	if res.Method != nutrition.MethodUnknownFallback || res.Grams != 3 {
		t.Fatalf("expected unknown_fallback with grams=3, got %s %.2f", res.Method, res.Grams)
	}
}

func TestConvertUnknownUnitFallsBackToGrams(t *testing.T) {
	t.Parallel()
	res, err := nutrition.Convert(40, "handful", chickenBreast())
	if err != nil {
		t.Fatalf("convert unknown unit: %v", err)
	}
	if res.Grams != 40 {
		t.Fatalf("expected grams=quantity, got %.2f", res.Grams)
	}
	if res.Method != nutrition.MethodUnknownFallback {
		t.Fatalf("expected unknown_fallback, got %s", res.Method)
	}
	if res.Accuracy != nutrition.AccuracyLow {
		t.Fatalf("expected low accuracy, got %s", res.Accuracy)
	}
}

func TestConvertDoublingQuantityDoublesGrams(t *testing.T) {
	t.Parallel()
	units := []string{"g", "oz", "cup", "scoop", "serving"}
	whey := &nutrition.FoodRecord{
		Name:        "Whey Isolate",
		ServingSize: 30,
		ServingUnit: "g",
		Calories:    ptr(120),
		ScoopSizeG:  ptr(30),
	}
	for _, u := range units {
		single, err := nutrition.Convert(1.5, u, whey)
		if err != nil {
			t.Fatalf("convert %q: %v", u, err)
		}
		double, err := nutrition.Convert(3, u, whey)
		if err != nil {
			t.Fatalf("convert %q: %v", u, err)
		}
		if math.Abs(double.Grams-2*single.Grams) > 1e-9 {
			t.Fatalf("unit %q: doubling quantity should double grams (%.4f vs %.4f)", u, single.Grams, double.Grams)
		}
	}
}
