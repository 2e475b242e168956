package services

import (
	"backend/config"
	"backend/models"
	"time"

	"gorm.io/gorm"
)

type FitnessInput struct {
	Steps          int     `json:"steps"`
	CaloriesBurned float64 `json:"calories_burned"`
	ActiveMinutes  float64 `json:"active_minutes"`
	Source         string  `json:"source"`
}

// UpsertFitness records one day of activity, keyed on (user, local midnight).
func UpsertFitness(userID uint, date time.Time, in FitnessInput) error {
	start := dayStart(date)

	row := models.FitnessData{
		UserID:         userID,
		Date:           start,
		Steps:          in.Steps,
		CaloriesBurned: in.CaloriesBurned,
		ActiveMinutes:  in.ActiveMinutes,
		Source:         in.Source,
	}

	return config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(row).
		FirstOrCreate(&row).Error
}

func GetFitnessByDate(userID uint, date time.Time) (*models.FitnessData, error) {
	var row models.FitnessData
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // no data is not an error
		}
		return nil, err
	}
	return &row, nil
}
