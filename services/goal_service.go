// services/goal_service.go
package services

import (
	"context"
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"gorm.io/gorm"
)

type GoalInput struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Fiber        float64 `json:"fiber"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	Inflammation float64 `json:"inflammation"`
}

func UpsertGoals(userID uint, in GoalInput) error {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{UserID: userID}
	} else if err != nil {
		return err
	}

	goal.Calories = in.Calories
	goal.Protein = in.Protein
	goal.Carbs = in.Carbs
	goal.Fat = in.Fat
	goal.Fiber = in.Fiber
	goal.Sugar = in.Sugar
	goal.Sodium = in.Sodium
	goal.Inflammation = in.Inflammation

	return config.DB.Save(&goal).Error
}

// GetGoalsAndProgressByDate compares the day view's computed totals against
// the user's targets. Progress is capped at 1 per metric; for the
// inflammation target "progress" means staying under it, so it reports the
// day's score alongside the target instead of a ratio.
func GetGoalsAndProgressByDate(userID uint, date time.Time) (*models.DailyGoal, map[string]interface{}, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	day, err := NewAnalyticsService(config.DB).DayView(context.Background(), userID, date)
	if err != nil {
		return &goal, nil, err
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	t := day.MacroTotals
	progress := map[string]interface{}{
		"calories": map[string]float64{"consumed": t.TotalCalories, "goal": goal.Calories, "percent": pct(t.TotalCalories, goal.Calories)},
		"protein":  map[string]float64{"consumed": t.TotalProtein, "goal": goal.Protein, "percent": pct(t.TotalProtein, goal.Protein)},
		"carbs":    map[string]float64{"consumed": t.TotalCarbs, "goal": goal.Carbs, "percent": pct(t.TotalCarbs, goal.Carbs)},
		"fat":      map[string]float64{"consumed": t.TotalFat, "goal": goal.Fat, "percent": pct(t.TotalFat, goal.Fat)},
		"fiber":    map[string]float64{"consumed": t.TotalFiber, "goal": goal.Fiber, "percent": pct(t.TotalFiber, goal.Fiber)},
		"sugar":    map[string]float64{"consumed": t.TotalSugar, "goal": goal.Sugar, "percent": pct(t.TotalSugar, goal.Sugar)},
		"sodium":   map[string]float64{"consumed": t.TotalSodium, "goal": goal.Sodium, "percent": pct(t.TotalSodium, goal.Sodium)},
		"inflammation": map[string]float64{
			"score":  day.InflammationMetrics.DailyScore,
			"target": goal.Inflammation,
		},
	}

	return &goal, progress, nil
}
