package models

import (
    "time"

    "gorm.io/gorm"
)

// Meal slots used for day-view subtotal grouping.
const (
    MealBreakfast = "breakfast"
    MealLunch     = "lunch"
    MealDinner    = "dinner"
    MealSnack     = "snack"
)

// Quantity units accepted on an entry.
const (
    UnitGram       = "g"
    UnitMilliliter = "ml"
    UnitCup        = "cup"
    UnitPiece      = "piece"
    UnitOunce      = "oz"
    UnitTablespoon = "tbsp"
    UnitTeaspoon   = "tsp"
)

func ValidMealType(t string) bool {
    switch t {
    case MealBreakfast, MealLunch, MealDinner, MealSnack:
        return true
    }
    return false
}

func ValidUnit(u string) bool {
    switch u {
    case UnitGram, UnitMilliliter, UnitCup, UnitPiece, UnitOunce, UnitTablespoon, UnitTeaspoon:
        return true
    }
    return false
}

// NutrientProfile holds label values per 100 of the entry's unit.
// Fiber/sugar/sodium are optional on food labels, hence the pointers.
type NutrientProfile struct {
    CaloriesPer100 float64  `json:"calories_per_100"`
    ProteinPer100  float64  `json:"protein_per_100"`
    FatPer100      float64  `json:"fat_per_100"`
    CarbsPer100    float64  `json:"carbs_per_100"`
    FiberPer100    *float64 `json:"fiber_per_100,omitempty"`
    SugarPer100    *float64 `json:"sugar_per_100,omitempty"`
    SodiumPer100   *float64 `json:"sodium_per_100,omitempty"`
}

// NutritionTotals are the absolute amounts for the logged quantity.
// Optional profile fields resolve to 0 here, never to a missing value.
type NutritionTotals struct {
    TotalCalories float64 `json:"total_calories"`
    TotalProtein  float64 `json:"total_protein"`
    TotalFat      float64 `json:"total_fat"`
    TotalCarbs    float64 `json:"total_carbs"`
    TotalFiber    float64 `json:"total_fiber"`
    TotalSugar    float64 `json:"total_sugar"`
    TotalSodium   float64 `json:"total_sodium"`
}

// One logged food item with its nutrition snapshot and score.
type FoodEntry struct {
    gorm.Model
    UserID uint `gorm:"index;not null" json:"user_id"`

    Name       string    `gorm:"not null" json:"name"`
    Brand      string    `json:"brand,omitempty"`
    Barcode    string    `json:"barcode,omitempty"`
    Quantity   float64   `json:"quantity"` // e.g. 150
    Unit       string    `gorm:"size:8" json:"unit"`
    MealType   string    `gorm:"size:16;index" json:"meal_type"`
    ConsumedAt time.Time `gorm:"index" json:"consumed_at"`

    NutrientProfile NutrientProfile `gorm:"embedded" json:"nutrient_profile"`
    NutritionTotals NutritionTotals `gorm:"embedded" json:"nutrition_totals"`

    InflammationScore int    `json:"inflammation_score"` // 0-100, lower is better
    PhotoURL          string `json:"photo_url,omitempty"`
}
