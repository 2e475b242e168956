package utils

import "backend/models"

// ComputeNutritionTotals scales a per-100 nutrient profile to the logged
// quantity. Optional profile fields (fiber/sugar/sodium) resolve to 0 so
// callers never need to nil-check the totals. Inputs are assumed validated
// upstream; no rounding happens here; display formatting is the client's
// concern.
func ComputeNutritionTotals(quantity float64, p models.NutrientProfile) models.NutritionTotals {
	ratio := quantity / 100.0

	opt := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v * ratio
	}

	return models.NutritionTotals{
		TotalCalories: p.CaloriesPer100 * ratio,
		TotalProtein:  p.ProteinPer100 * ratio,
		TotalFat:      p.FatPer100 * ratio,
		TotalCarbs:    p.CarbsPer100 * ratio,
		TotalFiber:    opt(p.FiberPer100),
		TotalSugar:    opt(p.SugarPer100),
		TotalSodium:   opt(p.SodiumPer100),
	}
}
