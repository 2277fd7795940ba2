package nutrition

// Human-readable caveats attached to estimated totals. Each explains one way
// a conversion degraded; Aggregate deduplicates them in first-occurrence
// order.
const (
	CaveatUnknownUnit      = "One or more units could not be converted; treated as grams."
	CaveatVolumeAssumption = "Volume-to-weight conversion assumed standard density; accuracy may vary for dense or light foods."
	CaveatMissingFood      = "Some foods could not be matched to a database entry."
	CaveatInvalidQuantity  = "Some items had an invalid quantity and were not counted."
)

// Aggregate sums scaled nutrition across the items of one quick entry.
// Absent nutrient fields count as zero for summation only. The total is
// marked estimated as soon as any single item converted below high accuracy,
// and each degradation mode contributes its caveat exactly once.
func Aggregate(items []Item) EntryTotal {
	total := EntryTotal{}
	seen := map[string]bool{}
	addCaveat := func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			total.Caveats = append(total.Caveats, msg)
		}
	}

	for _, item := range items {
		if item.InvalidQuantity {
			total.Estimated = true
			addCaveat(CaveatInvalidQuantity)
			continue
		}
		if item.MissingFood {
			total.Estimated = true
			addCaveat(CaveatMissingFood)
			continue
		}

		total.Calories += deref(item.Nutrition.Calories)
		total.ProteinG += deref(item.Nutrition.ProteinG)
		total.CarbsG += deref(item.Nutrition.CarbsG)
		total.FatG += deref(item.Nutrition.FatG)
		total.FiberG += deref(item.Nutrition.FiberG)
		total.SugarG += deref(item.Nutrition.SugarG)
		total.SodiumMg += deref(item.Nutrition.SodiumMg)

		if item.Conversion.Accuracy != AccuracyHigh || item.Nutrition.Degraded {
			total.Estimated = true
		}
		if item.Conversion.Method == MethodUnknownFallback {
			addCaveat(CaveatUnknownUnit)
		}
		if item.Conversion.Method == MethodGenericTable && volumeAssumptionUnits[item.Conversion.Unit] {
			addCaveat(CaveatVolumeAssumption)
		}
	}

	return total
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
