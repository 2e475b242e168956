package models

import (
	"time"

	"gorm.io/gorm"
)

// FitnessData is one day of activity synced from a wearable (or entered
// manually). Steps feed the weekly averages; the engine itself never reads
// this table.
type FitnessData struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD

	Steps          int
	CaloriesBurned float64
	ActiveMinutes  float64
	Source         string `gorm:"size:32"` // "healthkit" | "google_fit" | "manual"
}
