package services_test

import (
	"math"
	"testing"
	"time"

	"backend/models"
	"backend/services"
)

func entry(meal string, calories float64, score int) models.FoodEntry {
	return models.FoodEntry{
		MealType: meal,
		NutritionTotals: models.NutritionTotals{
			TotalCalories: calories,
			TotalProtein:  calories / 20,
			TotalCarbs:    calories / 10,
		},
		InflammationScore: score,
	}
}

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAggregateDayEmpty(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	out := services.AggregateDay(date, nil)

	if out.Date != "2025-03-10" {
		t.Fatalf("date = %q", out.Date)
	}
	if out.MacroTotals.TotalCalories != 0 || out.MacroTotals.TotalProtein != 0 {
		t.Errorf("macro totals should be zero for an empty day: %+v", out.MacroTotals)
	}
	if out.InflammationMetrics.DailyScore != 50 {
		t.Errorf("empty day score = %v, want neutral 50", out.InflammationMetrics.DailyScore)
	}
	if out.InflammationMetrics.FoodCount != 0 {
		t.Errorf("food count = %d, want 0", out.InflammationMetrics.FoodCount)
	}
	ms := out.InflammationMetrics.MealScores
	if ms.Breakfast != nil || ms.Lunch != nil || ms.Dinner != nil || ms.Snack != nil {
		t.Errorf("meal scores should all be nil for an empty day: %+v", ms)
	}
}

func TestAggregateDayTotalsAndSlots(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []models.FoodEntry{
		entry(models.MealBreakfast, 300, 40),
		entry(models.MealBreakfast, 100, 60),
		entry(models.MealLunch, 650, 70),
		entry(models.MealSnack, 150, 30),
	}

	out := services.AggregateDay(date, entries)

	if !almost(out.MacroTotals.TotalCalories, 1200) {
		t.Errorf("total calories = %v, want 1200", out.MacroTotals.TotalCalories)
	}
	slotSum := out.MacroTotals.BreakfastCalories + out.MacroTotals.LunchCalories +
		out.MacroTotals.DinnerCalories + out.MacroTotals.SnackCalories
	if !almost(slotSum, out.MacroTotals.TotalCalories) {
		t.Errorf("slot calories sum %v != total %v", slotSum, out.MacroTotals.TotalCalories)
	}
	if !almost(out.MacroTotals.BreakfastCalories, 400) {
		t.Errorf("breakfast calories = %v, want 400", out.MacroTotals.BreakfastCalories)
	}

	if out.InflammationMetrics.FoodCount != 4 {
		t.Errorf("food count = %d, want 4", out.InflammationMetrics.FoodCount)
	}
	if !almost(out.InflammationMetrics.DailyScore, 50) { // (40+60+70+30)/4
		t.Errorf("daily score = %v, want 50", out.InflammationMetrics.DailyScore)
	}

	ms := out.InflammationMetrics.MealScores
	if ms.Breakfast == nil || !almost(*ms.Breakfast, 50) {
		t.Errorf("breakfast score = %v, want 50", ms.Breakfast)
	}
	if ms.Lunch == nil || !almost(*ms.Lunch, 70) {
		t.Errorf("lunch score = %v, want 70", ms.Lunch)
	}
	if ms.Dinner != nil {
		t.Errorf("dinner score should be nil with no dinner entries, got %v", *ms.Dinner)
	}
	if ms.Snack == nil || !almost(*ms.Snack, 30) {
		t.Errorf("snack score = %v, want 30", ms.Snack)
	}
}

func TestAggregateWeekAllEmpty(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // a Monday
	days := make([]services.DayViewResponse, 7)
	for i := range days {
		days[i] = services.AggregateDay(start.AddDate(0, 0, i), nil)
	}

	out := services.AggregateWeek(start, days)

	if out.StartDate != "2025-03-10" || out.EndDate != "2025-03-16" {
		t.Fatalf("range = %s..%s", out.StartDate, out.EndDate)
	}
	if len(out.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(out.Days))
	}
	if out.Days[0].DayOfWeek != "Monday" || out.Days[6].DayOfWeek != "Sunday" {
		t.Errorf("day names wrong: %s..%s", out.Days[0].DayOfWeek, out.Days[6].DayOfWeek)
	}
	if out.WeeklyAverages.AvgCalories != 0 {
		t.Errorf("avg calories = %v, want 0", out.WeeklyAverages.AvgCalories)
	}
	if out.WeeklyAverages.AvgInflammationScore != 50 {
		t.Errorf("avg score = %v, want neutral 50", out.WeeklyAverages.AvgInflammationScore)
	}
	if out.WeeklyAverages.AvgSteps != nil {
		t.Errorf("avg steps should be nil with no fitness data, got %v", *out.WeeklyAverages.AvgSteps)
	}
}

func TestAggregateWeekSkipsEmptyDaysInAverages(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	days := make([]services.DayViewResponse, 7)
	for i := range days {
		days[i] = services.AggregateDay(start.AddDate(0, 0, i), nil)
	}
	// Two logged days; five empty ones must not dilute the averages.
	days[0] = services.AggregateDay(start, []models.FoodEntry{
		entry(models.MealLunch, 2000, 60),
	})
	days[3] = services.AggregateDay(start.AddDate(0, 0, 3), []models.FoodEntry{
		entry(models.MealBreakfast, 1000, 20),
	})

	out := services.AggregateWeek(start, days)

	if !almost(out.WeeklyAverages.AvgCalories, 1500) {
		t.Errorf("avg calories = %v, want 1500", out.WeeklyAverages.AvgCalories)
	}
	if !almost(out.WeeklyAverages.AvgInflammationScore, 40) {
		t.Errorf("avg score = %v, want 40", out.WeeklyAverages.AvgInflammationScore)
	}

	// Empty days still show up in the trend series.
	if out.Days[1].FoodCount != 0 || out.Days[1].InflammationScore != 50 {
		t.Errorf("empty day summary = %+v", out.Days[1])
	}
}

func TestAggregateWeekAvgSteps(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	days := make([]services.DayViewResponse, 7)
	for i := range days {
		days[i] = services.AggregateDay(start.AddDate(0, 0, i), nil)
	}
	days[0].FitnessMetrics = &services.FitnessMetrics{Steps: 8000}
	days[1].FitnessMetrics = &services.FitnessMetrics{Steps: 12000}

	out := services.AggregateWeek(start, days)

	if out.WeeklyAverages.AvgSteps == nil {
		t.Fatal("avg steps should be set when fitness data exists")
	}
	if !almost(*out.WeeklyAverages.AvgSteps, 10000) {
		t.Errorf("avg steps = %v, want 10000", *out.WeeklyAverages.AvgSteps)
	}
}
