package services

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Day view ----------

type MacroTotals struct {
	models.NutritionTotals
	BreakfastCalories float64 `json:"breakfast_calories"`
	LunchCalories     float64 `json:"lunch_calories"`
	DinnerCalories    float64 `json:"dinner_calories"`
	SnackCalories     float64 `json:"snack_calories"`
}

// Per-slot averages are pointers: nil means "no entries in that slot",
// which the clients render differently from a true 0 or the neutral 50.
type MealScores struct {
	Breakfast *float64 `json:"breakfast,omitempty"`
	Lunch     *float64 `json:"lunch,omitempty"`
	Dinner    *float64 `json:"dinner,omitempty"`
	Snack     *float64 `json:"snack,omitempty"`
}

type InflammationMetrics struct {
	DailyScore float64    `json:"daily_score"` // 0-100, lower is better
	FoodCount  int        `json:"food_count"`
	MealScores MealScores `json:"meal_scores"`
}

type FitnessMetrics struct {
	Steps          int     `json:"steps"`
	CaloriesBurned float64 `json:"calories_burned,omitempty"`
	ActiveMinutes  float64 `json:"active_minutes,omitempty"`
	Source         string  `json:"source,omitempty"`
}

type DayViewResponse struct {
	Date                string              `json:"date"`
	FoodEntries         []models.FoodEntry  `json:"food_entries"`
	MacroTotals         MacroTotals         `json:"macro_totals"`
	InflammationMetrics InflammationMetrics `json:"inflammation_metrics"`
	FitnessMetrics      *FitnessMetrics     `json:"fitness_metrics,omitempty"`
}

// AggregateDay rolls one day of scored entries into macro totals and
// inflammation metrics. Pure: it only reads its input. Macro totals sum to
// zero for an empty day while the daily score falls back to the neutral 50;
// the clients depend on that asymmetry.
func AggregateDay(date time.Time, entries []models.FoodEntry) DayViewResponse {
	out := DayViewResponse{
		Date:        date.Format("2006-01-02"),
		FoodEntries: entries,
	}

	type acc struct {
		calories float64
		score    float64
		n        int
	}
	slots := map[string]*acc{
		models.MealBreakfast: {}, models.MealLunch: {},
		models.MealDinner: {}, models.MealSnack: {},
	}

	var scoreSum float64
	for _, e := range entries {
		t := e.NutritionTotals
		out.MacroTotals.TotalCalories += t.TotalCalories
		out.MacroTotals.TotalProtein += t.TotalProtein
		out.MacroTotals.TotalFat += t.TotalFat
		out.MacroTotals.TotalCarbs += t.TotalCarbs
		out.MacroTotals.TotalFiber += t.TotalFiber
		out.MacroTotals.TotalSugar += t.TotalSugar
		out.MacroTotals.TotalSodium += t.TotalSodium

		scoreSum += float64(e.InflammationScore)

		if a := slots[e.MealType]; a != nil {
			a.calories += t.TotalCalories
			a.score += float64(e.InflammationScore)
			a.n++
		}
	}

	out.MacroTotals.BreakfastCalories = slots[models.MealBreakfast].calories
	out.MacroTotals.LunchCalories = slots[models.MealLunch].calories
	out.MacroTotals.DinnerCalories = slots[models.MealDinner].calories
	out.MacroTotals.SnackCalories = slots[models.MealSnack].calories

	out.InflammationMetrics.FoodCount = len(entries)
	if len(entries) == 0 {
		out.InflammationMetrics.DailyScore = 50 // neutral, not 0
	} else {
		out.InflammationMetrics.DailyScore = scoreSum / float64(len(entries))
	}

	slotAvg := func(a *acc) *float64 {
		if a.n == 0 {
			return nil
		}
		v := a.score / float64(a.n)
		return &v
	}
	out.InflammationMetrics.MealScores = MealScores{
		Breakfast: slotAvg(slots[models.MealBreakfast]),
		Lunch:     slotAvg(slots[models.MealLunch]),
		Dinner:    slotAvg(slots[models.MealDinner]),
		Snack:     slotAvg(slots[models.MealSnack]),
	}

	return out
}

// ---------- Week view ----------

type DaySummary struct {
	Date              string  `json:"date"`
	DayOfWeek         string  `json:"day_of_week"`
	TotalCalories     float64 `json:"total_calories"`
	InflammationScore float64 `json:"inflammation_score"`
	FoodCount         int     `json:"food_count"`
}

type WeeklyAverages struct {
	AvgCalories          float64  `json:"avg_calories"`
	AvgInflammationScore float64  `json:"avg_inflammation_score"`
	AvgSteps             *float64 `json:"avg_steps,omitempty"`
}

type WeekViewResponse struct {
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	Days           []DaySummary   `json:"days"`
	WeeklyAverages WeeklyAverages `json:"weekly_averages"`
}

// AggregateWeek combines seven day views (one per date in
// [startDate, startDate+6], in order) into week-level averages and a
// per-day trend series. Days without entries stay in the series with
// foodCount 0 but are excluded from the averages so empty days don't
// dilute them. Pure, like AggregateDay.
func AggregateWeek(startDate time.Time, days []DayViewResponse) WeekViewResponse {
	out := WeekViewResponse{
		StartDate: startDate.Format("2006-01-02"),
		EndDate:   startDate.AddDate(0, 0, 6).Format("2006-01-02"),
	}

	var calSum, scoreSum float64
	var withData int
	var stepsSum float64
	var stepsDays int

	for i, dv := range days {
		d := startDate.AddDate(0, 0, i)
		out.Days = append(out.Days, DaySummary{
			Date:              dv.Date,
			DayOfWeek:         d.Weekday().String(),
			TotalCalories:     dv.MacroTotals.TotalCalories,
			InflammationScore: dv.InflammationMetrics.DailyScore,
			FoodCount:         dv.InflammationMetrics.FoodCount,
		})

		if dv.InflammationMetrics.FoodCount > 0 {
			withData++
			calSum += dv.MacroTotals.TotalCalories
			scoreSum += dv.InflammationMetrics.DailyScore
		}
		if dv.FitnessMetrics != nil {
			stepsDays++
			stepsSum += float64(dv.FitnessMetrics.Steps)
		}
	}

	if withData == 0 {
		out.WeeklyAverages.AvgCalories = 0
		out.WeeklyAverages.AvgInflammationScore = 50 // neutral, mirrors the daily fallback
	} else {
		out.WeeklyAverages.AvgCalories = calSum / float64(withData)
		out.WeeklyAverages.AvgInflammationScore = scoreSum / float64(withData)
	}
	if stepsDays > 0 {
		avg := stepsSum / float64(stepsDays)
		out.WeeklyAverages.AvgSteps = &avg
	}

	return out
}

// ---------- DB-backed assembly ----------

func (s *AnalyticsService) DayView(ctx context.Context, userID uint, date time.Time) (*DayViewResponse, error) {
	var entries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		Order("consumed_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	out := AggregateDay(date, entries)

	var fit models.FitnessData
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		First(&fit).Error
	if err == nil {
		out.FitnessMetrics = &FitnessMetrics{
			Steps:          fit.Steps,
			CaloriesBurned: fit.CaloriesBurned,
			ActiveMinutes:  fit.ActiveMinutes,
			Source:         fit.Source,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &out, nil
}

func (s *AnalyticsService) WeekView(ctx context.Context, userID uint, weekStart time.Time) (*WeekViewResponse, error) {
	days := make([]DayViewResponse, 0, 7)
	for i := 0; i < 7; i++ {
		dv, err := s.DayView(ctx, userID, weekStart.AddDate(0, 0, i))
		if err != nil {
			// A failed fetch aborts the request; we never substitute a
			// fake empty day for one we couldn't read.
			return nil, err
		}
		days = append(days, *dv)
	}

	out := AggregateWeek(weekStart, days)
	return &out, nil
}

// ---------- internals ----------

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
