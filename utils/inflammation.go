package utils

import (
	"math"
	"strings"

	"backend/models"
)

// Fixed keyword markers for the heuristic scorer. Stems on purpose
// ("blueberr" matches blueberry/blueberries). These stand in for a learned
// model; keep the lists in sync with the mobile clients.
var antiInflammatoryMarkers = []string{
	"blueberr", "salmon", "sardine", "mackerel", "walnut", "almond",
	"spinach", "kale", "broccoli", "sweet potato", "turmeric", "ginger",
	"olive oil", "avocado", "green tea", "dark chocolate", "tart cherry",
}

var proInflammatoryMarkers = []string{
	"fried", "processed", "refined", "sugar", "soda", "white bread",
	"donut", "cookie", "cake", "pizza", "burger", "fries", "candy",
}

// InflammationScore rates one food entry on a 0-100 scale, lower meaning
// less pro-inflammatory. Deterministic rule evaluator: a 50 baseline moved
// by name/brand keyword markers and a handful of nutrient thresholds, then
// rounded (half away from zero) and clamped.
func InflammationScore(name, brand string, t models.NutritionTotals) int {
	// Empty placeholder entries stay at the neutral baseline.
	if t.TotalCalories == 0 && t.TotalProtein == 0 && t.TotalFat == 0 && t.TotalCarbs == 0 {
		return 50
	}

	score := 50.0
	searchText := strings.ToLower(name) + " " + strings.ToLower(brand)

	// Each marker counts at most once regardless of repetition.
	for _, kw := range antiInflammatoryMarkers {
		if strings.Contains(searchText, kw) {
			score -= 15
		}
	}
	for _, kw := range proInflammatoryMarkers {
		if strings.Contains(searchText, kw) {
			score += 20
		}
	}

	if t.TotalFiber > 5 {
		score -= 5
	}
	if t.TotalSugar > 20 {
		score += 10
	}
	if t.TotalSodium > 500 {
		score += 8
	}

	// Fat quality heuristics; skipped entirely when calories are zero.
	if t.TotalCalories != 0 {
		fatRatio := t.TotalFat / t.TotalCalories
		if fatRatio > 0.35 {
			score += 5
		}
		if fatRatio < 0.1 && t.TotalCarbs > 50 {
			score += 5
		}
	}

	if t.TotalProtein > 20 {
		score -= 3
	}

	return int(math.Max(0, math.Min(100, math.Round(score))))
}
