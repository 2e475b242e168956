package utils_test

import (
	"testing"

	"backend/models"
	"backend/utils"
)

func TestInflammationScoreAntiInflammatoryFood(t *testing.T) {
	t.Parallel()

	totals := models.NutritionTotals{
		TotalCalories: 57,
		TotalProtein:  0.7,
		TotalFat:      0.3,
		TotalCarbs:    14.5,
		TotalFiber:    2.4,
		TotalSugar:    10,
		TotalSodium:   1,
	}

	// one anti marker ("blueberr"), no nutrient rule fires: 50 - 15
	got := utils.InflammationScore("Blueberries", "", totals)
	if got != 35 {
		t.Fatalf("score = %d, want 35", got)
	}
	if got >= 50 {
		t.Fatalf("anti-inflammatory food must score below neutral, got %d", got)
	}
}

func TestInflammationScoreProInflammatoryFood(t *testing.T) {
	t.Parallel()

	totals := models.NutritionTotals{
		TotalCalories: 400,
		TotalProtein:  25,
		TotalFat:      25,
		TotalCarbs:    15,
		TotalFiber:    0,
		TotalSugar:    2,
		TotalSodium:   800,
	}

	// "fried" +20, sodium +8, protein -3
	got := utils.InflammationScore("Fried Chicken", "Fast Food Chain", totals)
	if got != 75 {
		t.Fatalf("score = %d, want 75", got)
	}
	if got <= 60 {
		t.Fatalf("pro-inflammatory food must score above 60, got %d", got)
	}
}

func TestInflammationScoreNeutralFood(t *testing.T) {
	t.Parallel()

	totals := models.NutritionTotals{
		TotalCalories: 165,
		TotalProtein:  31,
		TotalFat:      3.6,
		TotalSodium:   74,
	}

	got := utils.InflammationScore("Chicken Breast", "", totals)
	if got <= 30 || got >= 60 {
		t.Fatalf("neutral food should land in the moderate band, got %d", got)
	}
}

func TestInflammationScoreZeroFoodIsExactlyNeutral(t *testing.T) {
	t.Parallel()

	got := utils.InflammationScore("Fried Placeholder", "", models.NutritionTotals{})
	if got != 50 {
		t.Fatalf("zero food must score exactly 50, got %d", got)
	}
}

func TestInflammationScoreSugarIncreasesScore(t *testing.T) {
	t.Parallel()

	base := models.NutritionTotals{
		TotalCalories: 150,
		TotalProtein:  5,
		TotalFat:      3,
		TotalCarbs:    30,
		TotalFiber:    4,
	}

	low := base
	low.TotalSugar = 1
	high := base
	high.TotalSugar = 25

	lowScore := utils.InflammationScore("Porridge", "", low)
	highScore := utils.InflammationScore("Porridge", "", high)
	if highScore <= lowScore {
		t.Fatalf("raising sugar must raise the score: %d vs %d", lowScore, highScore)
	}
}

func TestInflammationScoreFiberDecreasesScore(t *testing.T) {
	t.Parallel()

	base := models.NutritionTotals{
		TotalCalories: 150,
		TotalProtein:  5,
		TotalFat:      3,
		TotalCarbs:    30,
		TotalSugar:    1,
	}

	low := base
	low.TotalFiber = 2
	high := base
	high.TotalFiber = 8

	lowFiber := utils.InflammationScore("Porridge", "", low)
	highFiber := utils.InflammationScore("Porridge", "", high)
	if highFiber >= lowFiber {
		t.Fatalf("raising fiber must lower the score: %d vs %d", lowFiber, highFiber)
	}
}

func TestInflammationScoreStaysInBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, brand string
		totals      models.NutritionTotals
	}{
		{"Mystery Loaf", "", models.NutritionTotals{
			TotalCalories: 1000, TotalProtein: 100, TotalFat: 100,
			TotalCarbs: 100, TotalSugar: 100, TotalSodium: 5000,
		}},
		{"fried processed refined sugar soda burger fries candy", "", models.NutritionTotals{
			TotalCalories: 500, TotalFat: 30, TotalCarbs: 60, TotalSugar: 40, TotalSodium: 900,
		}},
		{"salmon spinach kale broccoli turmeric ginger walnut", "", models.NutritionTotals{
			TotalCalories: 200, TotalProtein: 25, TotalFat: 9, TotalCarbs: 4, TotalFiber: 6,
		}},
	}
	for _, tc := range cases {
		got := utils.InflammationScore(tc.name, tc.brand, tc.totals)
		if got < 0 || got > 100 {
			t.Fatalf("%q: score %d out of [0,100]", tc.name, got)
		}
	}
}

func TestInflammationScoreMarkerCountsOnce(t *testing.T) {
	t.Parallel()

	totals := models.NutritionTotals{TotalCalories: 100, TotalProtein: 2, TotalFat: 2, TotalCarbs: 10}
	once := utils.InflammationScore("fried rice", "", totals)
	twice := utils.InflammationScore("fried fried rice", "", totals)
	if once != twice {
		t.Fatalf("repeated marker must not stack: %d vs %d", once, twice)
	}
}

func TestInflammationScoreIdempotent(t *testing.T) {
	t.Parallel()

	totals := models.NutritionTotals{TotalCalories: 320, TotalProtein: 12, TotalFat: 14, TotalCarbs: 35, TotalSugar: 9}
	a := utils.InflammationScore("Margherita Pizza", "Trattoria", totals)
	b := utils.InflammationScore("Margherita Pizza", "Trattoria", totals)
	if a != b {
		t.Fatalf("same input must yield the same score: %d vs %d", a, b)
	}
}
