package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func init() {
	// nutrient quantities go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// FoodItem is a catalog entry for a single product. All nutrient
// quantities are per 100g of product and optional: absent means
// "not declared on the label", not zero.
type FoodItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null;index" json:"name"`
	Brand       string `gorm:"size:255" json:"brand,omitempty"`
	Description string `gorm:"size:1000" json:"description,omitempty"`

	EnergyKJ      *decimal.Decimal `gorm:"type:decimal(12,4)" json:"energy_kj,omitempty"`
	EnergyKcal    *decimal.Decimal `gorm:"type:decimal(12,4)" json:"energy_kcal,omitempty"`
	Fat           *decimal.Decimal `gorm:"type:decimal(12,4)" json:"fat,omitempty"`
	SaturatedFat  *decimal.Decimal `gorm:"type:decimal(12,4)" json:"saturated_fat,omitempty"`
	Carbohydrates *decimal.Decimal `gorm:"type:decimal(12,4)" json:"carbohydrates,omitempty"`
	Sugars        *decimal.Decimal `gorm:"type:decimal(12,4)" json:"sugars,omitempty"`
	Fiber         *decimal.Decimal `gorm:"type:decimal(12,4)" json:"fiber,omitempty"`
	Protein       *decimal.Decimal `gorm:"type:decimal(12,4)" json:"protein,omitempty"`
	Salt          *decimal.Decimal `gorm:"type:decimal(12,4)" json:"salt,omitempty"`
	Sodium        *decimal.Decimal `gorm:"type:decimal(12,4)" json:"sodium,omitempty"`

	NutriScore       *NutriScore       `gorm:"type:varchar(1)" json:"nutri_score,omitempty"`
	HealthAssessment *HealthAssessment `gorm:"type:varchar(20)" json:"health_assessment,omitempty"`

	Ingredients datatypes.JSONSlice[string] `json:"ingredients,omitempty"`
	Allergens   datatypes.JSONSlice[string] `json:"allergens,omitempty"`
	Categories  datatypes.JSONSlice[string] `json:"categories,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Barcodes    []Barcode     `gorm:"constraint:OnDelete:CASCADE" json:"barcodes,omitempty"`
	ScanHistory []ScanHistory `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (FoodItem) TableName() string {
	return "food_items"
}

// Nutrition projects the item into the eight-field summary shape used by
// read endpoints.
func (f *FoodItem) Nutrition() NutritionSummary {
	return NutritionSummary{
		EnergyKcal:    f.EnergyKcal,
		Fat:           f.Fat,
		SaturatedFat:  f.SaturatedFat,
		Carbohydrates: f.Carbohydrates,
		Sugars:        f.Sugars,
		Fiber:         f.Fiber,
		Protein:       f.Protein,
		Salt:          f.Salt,
	}
}
