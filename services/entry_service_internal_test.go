package services

import (
	"testing"
	"time"

	"backend/models"
)

func strp(s string) *string    { return &s }
func fp(v float64) *float64    { return &v }
func tp(t time.Time) *time.Time { return &t }

func storedEntry() models.FoodEntry {
	return models.FoodEntry{
		UserID:   1,
		Name:     "Oatmeal",
		Brand:    "Quaker",
		Quantity: 40,
		Unit:     models.UnitGram,
		MealType: models.MealBreakfast,
		NutrientProfile: models.NutrientProfile{
			CaloriesPer100: 380,
			ProteinPer100:  13,
			FatPer100:      7,
			CarbsPer100:    68,
		},
	}
}

func TestEntryPatchAppliesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	e := storedEntry()
	EntryPatch{Quantity: fp(60)}.apply(&e)

	if e.Quantity != 60 {
		t.Errorf("quantity = %v, want 60", e.Quantity)
	}
	if e.Name != "Oatmeal" || e.Brand != "Quaker" || e.MealType != models.MealBreakfast {
		t.Errorf("untouched fields changed: %+v", e)
	}
	if e.NutrientProfile.CaloriesPer100 != 380 {
		t.Errorf("profile changed: %+v", e.NutrientProfile)
	}
}

func TestEntryPatchMergedResultStillValidates(t *testing.T) {
	t.Parallel()

	svc := NewEntryService()

	e := storedEntry()
	EntryPatch{
		Name:        strp("Porridge"),
		MealType:    strp(models.MealSnack),
		ConsumedAt:  tp(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)),
		FiberPer100: fp(10),
	}.apply(&e)

	if err := svc.validate(inputFromEntry(&e)); err != nil {
		t.Fatalf("merged entry should validate, got %v", err)
	}
	if e.NutrientProfile.FiberPer100 == nil || *e.NutrientProfile.FiberPer100 != 10 {
		t.Errorf("fiber not set: %+v", e.NutrientProfile)
	}
}

func TestEntryPatchBadFieldsRejectedByValidation(t *testing.T) {
	t.Parallel()

	svc := NewEntryService()

	cases := []struct {
		name  string
		patch EntryPatch
	}{
		{"zero quantity", EntryPatch{Quantity: fp(0)}},
		{"unknown unit", EntryPatch{Unit: strp("barrel")}},
		{"unknown meal type", EntryPatch{MealType: strp("brunch")}},
		{"negative nutrient", EntryPatch{CaloriesPer100: fp(-1)}},
		{"negative optional nutrient", EntryPatch{SodiumPer100: fp(-5)}},
		{"cleared name", EntryPatch{Name: strp("")}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := storedEntry()
			tc.patch.apply(&e)
			if err := svc.validate(inputFromEntry(&e)); err == nil {
				t.Errorf("patch %+v should fail validation", tc.patch)
			}
		})
	}
}
