package utils_test

import (
	"math"
	"testing"

	"backend/models"
	"backend/utils"
)

func f64(v float64) *float64 { return &v }

func TestComputeNutritionTotalsScalesByRatio(t *testing.T) {
	t.Parallel()

	p := models.NutrientProfile{
		CaloriesPer100: 200,
		ProteinPer100:  25,
		FatPer100:      10,
		CarbsPer100:    5,
		FiberPer100:    f64(3),
		SugarPer100:    f64(2),
		SodiumPer100:   f64(100),
	}

	got := utils.ComputeNutritionTotals(150, p)

	want := models.NutritionTotals{
		TotalCalories: 300,
		TotalProtein:  37.5,
		TotalFat:      15,
		TotalCarbs:    7.5,
		TotalFiber:    4.5,
		TotalSugar:    3,
		TotalSodium:   150,
	}
	if got != want {
		t.Fatalf("totals = %+v, want %+v", got, want)
	}
}

func TestComputeNutritionTotalsDefaultsOptionalFields(t *testing.T) {
	t.Parallel()

	p := models.NutrientProfile{
		CaloriesPer100: 100,
		ProteinPer100:  10,
		FatPer100:      5,
		CarbsPer100:    15,
	}

	got := utils.ComputeNutritionTotals(100, p)

	if got.TotalCalories != 100 || got.TotalProtein != 10 || got.TotalFat != 5 || got.TotalCarbs != 15 {
		t.Fatalf("required totals wrong: %+v", got)
	}
	if got.TotalFiber != 0 || got.TotalSugar != 0 || got.TotalSodium != 0 {
		t.Fatalf("optional totals must default to 0, got %+v", got)
	}
}

func TestComputeNutritionTotalsIsDeterministicForAnyInput(t *testing.T) {
	t.Parallel()

	// No validation duty here: a negative quantity still yields a
	// deterministic, negative-scaled result instead of an error.
	p := models.NutrientProfile{CaloriesPer100: 50, ProteinPer100: 1, FatPer100: 2, CarbsPer100: 3}
	a := utils.ComputeNutritionTotals(-40, p)
	b := utils.ComputeNutritionTotals(-40, p)
	if a != b {
		t.Fatalf("not deterministic: %+v vs %+v", a, b)
	}
	if a.TotalCalories != -20 {
		t.Fatalf("TotalCalories = %v, want -20", a.TotalCalories)
	}
}

func TestComputeNutritionTotalsFractionalQuantity(t *testing.T) {
	t.Parallel()

	p := models.NutrientProfile{CaloriesPer100: 57, ProteinPer100: 0.7, FatPer100: 0.3, CarbsPer100: 14.5}
	got := utils.ComputeNutritionTotals(30, p)
	if math.Abs(got.TotalCalories-17.1) > 1e-9 {
		t.Fatalf("TotalCalories = %v, want 17.1", got.TotalCalories)
	}
}
