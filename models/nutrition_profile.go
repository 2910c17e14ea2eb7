package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DefaultProfileName is the profile scoring falls back to when the
// caller names none.
const DefaultProfileName = "General Adult"

// NutritionProfile is a named set of per-100g thresholds that
// parameterizes health scoring for a dietary context (e.g. "General
// Adult", "Low Sodium"). Profiles are looked up by name or id; nothing
// references them by foreign key.
type NutritionProfile struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`

	MaxFatPer100g          *decimal.Decimal `gorm:"type:decimal(12,4)" json:"max_fat_per_100g,omitempty"`
	MaxSaturatedFatPer100g *decimal.Decimal `gorm:"type:decimal(12,4)" json:"max_saturated_fat_per_100g,omitempty"`
	MaxSugarsPer100g       *decimal.Decimal `gorm:"type:decimal(12,4)" json:"max_sugars_per_100g,omitempty"`
	MaxSaltPer100g         *decimal.Decimal `gorm:"type:decimal(12,4)" json:"max_salt_per_100g,omitempty"`
	MinFiberPer100g        *decimal.Decimal `gorm:"type:decimal(12,4)" json:"min_fiber_per_100g,omitempty"`
	MinProteinPer100g      *decimal.Decimal `gorm:"type:decimal(12,4)" json:"min_protein_per_100g,omitempty"`

	// Letter → maximum total points for that grade. Missing letters fall
	// back to the standard Nutri-Score cutoffs.
	NutriScoreThresholds datatypes.JSONMap `json:"nutri_score_thresholds,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NutritionProfile) TableName() string {
	return "nutrition_profiles"
}

// Validate enforces the declared column limits before a profile is
// written.
func (p *NutritionProfile) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if err := checkLen("name", p.Name, 100); err != nil {
		return err
	}
	return checkLen("description", p.Description, 500)
}
