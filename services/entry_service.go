// services/entry_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

// Entries scoring at or above this trigger an inflammation alert.
const highInflammationScore = 80

type EntryService struct{}

func NewEntryService() *EntryService { return &EntryService{} }

type EntryInput struct {
	Name       string    `json:"name"`
	Brand      string    `json:"brand"`
	Barcode    string    `json:"barcode"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	MealType   string    `json:"meal_type"`
	ConsumedAt time.Time `json:"consumed_at"`

	models.NutrientProfile
}

// validate enforces the entry-creation contract: the scoring engine
// downstream assumes structurally valid input and never re-checks it.
func (s *EntryService) validate(in EntryInput) error {
	if in.Name == "" {
		return errors.New("food name is required")
	}
	if in.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if !models.ValidUnit(in.Unit) {
		return fmt.Errorf("unknown unit %q", in.Unit)
	}
	if !models.ValidMealType(in.MealType) {
		return fmt.Errorf("unknown meal type %q", in.MealType)
	}
	if in.CaloriesPer100 < 0 || in.ProteinPer100 < 0 || in.FatPer100 < 0 || in.CarbsPer100 < 0 {
		return errors.New("nutrient values must be non-negative")
	}
	for _, v := range []*float64{in.FiberPer100, in.SugarPer100, in.SodiumPer100} {
		if v != nil && *v < 0 {
			return errors.New("nutrient values must be non-negative")
		}
	}
	return nil
}

func (s *EntryService) AddEntry(userID uint, in EntryInput) (*models.FoodEntry, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	consumedAt := in.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = time.Now()
	}

	totals := utils.ComputeNutritionTotals(in.Quantity, in.NutrientProfile)

	entry := &models.FoodEntry{
		UserID:            userID,
		Name:              in.Name,
		Brand:             in.Brand,
		Barcode:           in.Barcode,
		Quantity:          in.Quantity,
		Unit:              in.Unit,
		MealType:          in.MealType,
		ConsumedAt:        consumedAt,
		NutrientProfile:   in.NutrientProfile,
		NutritionTotals:   totals,
		InflammationScore: utils.InflammationScore(in.Name, in.Brand, totals),
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	s.maybeAlert(entry)
	return entry, nil
}

// EntryPatch is a partial update: nil means "leave unchanged". Optional
// nutrients can be set but not cleared through a patch; resubmit the full
// entry to drop one.
type EntryPatch struct {
	Name       *string    `json:"name"`
	Brand      *string    `json:"brand"`
	Barcode    *string    `json:"barcode"`
	Quantity   *float64   `json:"quantity"`
	Unit       *string    `json:"unit"`
	MealType   *string    `json:"meal_type"`
	ConsumedAt *time.Time `json:"consumed_at"`

	CaloriesPer100 *float64 `json:"calories_per_100"`
	ProteinPer100  *float64 `json:"protein_per_100"`
	FatPer100      *float64 `json:"fat_per_100"`
	CarbsPer100    *float64 `json:"carbs_per_100"`
	FiberPer100    *float64 `json:"fiber_per_100"`
	SugarPer100    *float64 `json:"sugar_per_100"`
	SodiumPer100   *float64 `json:"sodium_per_100"`
}

func (p EntryPatch) apply(e *models.FoodEntry) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Brand != nil {
		e.Brand = *p.Brand
	}
	if p.Barcode != nil {
		e.Barcode = *p.Barcode
	}
	if p.Quantity != nil {
		e.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		e.Unit = *p.Unit
	}
	if p.MealType != nil {
		e.MealType = *p.MealType
	}
	if p.ConsumedAt != nil {
		e.ConsumedAt = *p.ConsumedAt
	}
	if p.CaloriesPer100 != nil {
		e.NutrientProfile.CaloriesPer100 = *p.CaloriesPer100
	}
	if p.ProteinPer100 != nil {
		e.NutrientProfile.ProteinPer100 = *p.ProteinPer100
	}
	if p.FatPer100 != nil {
		e.NutrientProfile.FatPer100 = *p.FatPer100
	}
	if p.CarbsPer100 != nil {
		e.NutrientProfile.CarbsPer100 = *p.CarbsPer100
	}
	if p.FiberPer100 != nil {
		e.NutrientProfile.FiberPer100 = p.FiberPer100
	}
	if p.SugarPer100 != nil {
		e.NutrientProfile.SugarPer100 = p.SugarPer100
	}
	if p.SodiumPer100 != nil {
		e.NutrientProfile.SodiumPer100 = p.SodiumPer100
	}
}

// inputFromEntry rebuilds the creation-shaped input so a patched entry goes
// through the same validation as a new one.
func inputFromEntry(e *models.FoodEntry) EntryInput {
	return EntryInput{
		Name:            e.Name,
		Brand:           e.Brand,
		Barcode:         e.Barcode,
		Quantity:        e.Quantity,
		Unit:            e.Unit,
		MealType:        e.MealType,
		ConsumedAt:      e.ConsumedAt,
		NutrientProfile: e.NutrientProfile,
	}
}

// UpdateEntry merges a partial payload onto the stored entry, revalidates
// the result, and recomputes totals and score.
func (s *EntryService) UpdateEntry(userID, entryID uint, p EntryPatch) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	p.apply(&entry)
	if err := s.validate(inputFromEntry(&entry)); err != nil {
		return nil, err
	}

	entry.NutritionTotals = utils.ComputeNutritionTotals(entry.Quantity, entry.NutrientProfile)
	entry.InflammationScore = utils.InflammationScore(entry.Name, entry.Brand, entry.NutritionTotals)

	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}

	s.maybeAlert(&entry)
	return &entry, nil
}

func (s *EntryService) DeleteEntry(userID, entryID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.FoodEntry{}).Error
}

func (s *EntryService) GetEntry(userID, entryID uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &entry, nil
}

// ListEntriesByDate returns the day's entries in consumption order;
// aggregation doesn't care, but the log screen keeps a stable order.
func (s *EntryService) ListEntriesByDate(userID uint, date time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := config.DB.
		Where("user_id = ? AND consumed_at BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		Order("consumed_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) ListRecentEntries(userID uint, limit int) ([]models.FoodEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var entries []models.FoodEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) SetPhotoURL(userID, entryID uint, url string) (*models.FoodEntry, error) {
	entry, err := s.GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}
	entry.PhotoURL = url
	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) maybeAlert(e *models.FoodEntry) {
	if e.InflammationScore < highInflammationScore {
		return
	}
	EmitAlert(e.UserID, "warning", fmt.Sprintf(
		"%s scored %d/100 on the inflammation scale. Consider an anti-inflammatory swap.",
		e.Name, e.InflammationScore,
	))
}
