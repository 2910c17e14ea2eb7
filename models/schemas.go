package models

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Contract schemas: request and response bodies built per call and never
// stored. The binding tags mirror the Validate methods so the rules hold
// whether a value arrives over HTTP or is constructed in code.

// FoodItemCreate is the input shape for registering a new product. Only
// the name is required.
type FoodItemCreate struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Brand       *string `json:"brand" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`

	EnergyKJ      *decimal.Decimal `json:"energy_kj"`
	EnergyKcal    *decimal.Decimal `json:"energy_kcal"`
	Fat           *decimal.Decimal `json:"fat"`
	SaturatedFat  *decimal.Decimal `json:"saturated_fat"`
	Carbohydrates *decimal.Decimal `json:"carbohydrates"`
	Sugars        *decimal.Decimal `json:"sugars"`
	Fiber         *decimal.Decimal `json:"fiber"`
	Protein       *decimal.Decimal `json:"protein"`
	Salt          *decimal.Decimal `json:"salt"`
	Sodium        *decimal.Decimal `json:"sodium"`

	NutriScore       *NutriScore       `json:"nutri_score"`
	HealthAssessment *HealthAssessment `json:"health_assessment"`

	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
	Categories  []string `json:"categories"`
}

func (in *FoodItemCreate) Validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if err := checkLen("name", in.Name, 255); err != nil {
		return err
	}
	if in.Brand != nil {
		if err := checkLen("brand", *in.Brand, 255); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := checkLen("description", *in.Description, 1000); err != nil {
			return err
		}
	}
	return checkEnums(in.NutriScore, in.HealthAssessment)
}

// Model maps the input onto a fresh entity.
func (in *FoodItemCreate) Model() *FoodItem {
	item := &FoodItem{
		Name:             in.Name,
		EnergyKJ:         in.EnergyKJ,
		EnergyKcal:       in.EnergyKcal,
		Fat:              in.Fat,
		SaturatedFat:     in.SaturatedFat,
		Carbohydrates:    in.Carbohydrates,
		Sugars:           in.Sugars,
		Fiber:            in.Fiber,
		Protein:          in.Protein,
		Salt:             in.Salt,
		Sodium:           in.Sodium,
		NutriScore:       in.NutriScore,
		HealthAssessment: in.HealthAssessment,
	}
	if in.Brand != nil {
		item.Brand = *in.Brand
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Ingredients != nil {
		item.Ingredients = datatypes.NewJSONSlice(in.Ingredients)
	}
	if in.Allergens != nil {
		item.Allergens = datatypes.NewJSONSlice(in.Allergens)
	}
	if in.Categories != nil {
		item.Categories = datatypes.NewJSONSlice(in.Categories)
	}
	return item
}

// FoodItemUpdate is the partial-update shape: every field optional, nil
// meaning "leave as is".
type FoodItemUpdate struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Brand       *string `json:"brand" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`

	EnergyKJ      *decimal.Decimal `json:"energy_kj"`
	EnergyKcal    *decimal.Decimal `json:"energy_kcal"`
	Fat           *decimal.Decimal `json:"fat"`
	SaturatedFat  *decimal.Decimal `json:"saturated_fat"`
	Carbohydrates *decimal.Decimal `json:"carbohydrates"`
	Sugars        *decimal.Decimal `json:"sugars"`
	Fiber         *decimal.Decimal `json:"fiber"`
	Protein       *decimal.Decimal `json:"protein"`
	Salt          *decimal.Decimal `json:"salt"`
	Sodium        *decimal.Decimal `json:"sodium"`

	NutriScore       *NutriScore       `json:"nutri_score"`
	HealthAssessment *HealthAssessment `json:"health_assessment"`

	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
	Categories  []string `json:"categories"`
}

func (in *FoodItemUpdate) Validate() error {
	if in.Name != nil {
		if *in.Name == "" {
			return &ValidationError{Field: "name", Reason: "must not be empty"}
		}
		if err := checkLen("name", *in.Name, 255); err != nil {
			return err
		}
	}
	if in.Brand != nil {
		if err := checkLen("brand", *in.Brand, 255); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := checkLen("description", *in.Description, 1000); err != nil {
			return err
		}
	}
	return checkEnums(in.NutriScore, in.HealthAssessment)
}

// Apply copies the populated fields onto an existing entity.
func (in *FoodItemUpdate) Apply(item *FoodItem) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Brand != nil {
		item.Brand = *in.Brand
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.EnergyKJ != nil {
		item.EnergyKJ = in.EnergyKJ
	}
	if in.EnergyKcal != nil {
		item.EnergyKcal = in.EnergyKcal
	}
	if in.Fat != nil {
		item.Fat = in.Fat
	}
	if in.SaturatedFat != nil {
		item.SaturatedFat = in.SaturatedFat
	}
	if in.Carbohydrates != nil {
		item.Carbohydrates = in.Carbohydrates
	}
	if in.Sugars != nil {
		item.Sugars = in.Sugars
	}
	if in.Fiber != nil {
		item.Fiber = in.Fiber
	}
	if in.Protein != nil {
		item.Protein = in.Protein
	}
	if in.Salt != nil {
		item.Salt = in.Salt
	}
	if in.Sodium != nil {
		item.Sodium = in.Sodium
	}
	if in.NutriScore != nil {
		item.NutriScore = in.NutriScore
	}
	if in.HealthAssessment != nil {
		item.HealthAssessment = in.HealthAssessment
	}
	if in.Ingredients != nil {
		item.Ingredients = datatypes.NewJSONSlice(in.Ingredients)
	}
	if in.Allergens != nil {
		item.Allergens = datatypes.NewJSONSlice(in.Allergens)
	}
	if in.Categories != nil {
		item.Categories = datatypes.NewJSONSlice(in.Categories)
	}
}

// BarcodeCreate is the input shape for binding a new code to an item.
type BarcodeCreate struct {
	Code        string `json:"code" binding:"required,max=50"`
	BarcodeType string `json:"barcode_type" binding:"required,max=20"`
	FoodItemID  uint   `json:"food_item_id" binding:"required"`
}

func (in *BarcodeCreate) Validate() error {
	if in.Code == "" {
		return &ValidationError{Field: "code", Reason: "required"}
	}
	if err := checkLen("code", in.Code, 50); err != nil {
		return err
	}
	if in.BarcodeType == "" {
		return &ValidationError{Field: "barcode_type", Reason: "required"}
	}
	if err := checkLen("barcode_type", in.BarcodeType, 20); err != nil {
		return err
	}
	if in.FoodItemID == 0 {
		return &ValidationError{Field: "food_item_id", Reason: "required"}
	}
	return nil
}

// ScanResult is the outcome of one barcode lookup. FoodItem is a snapshot
// of the resolved product, nil when nothing matched.
type ScanResult struct {
	Barcode          string            `json:"barcode"`
	Found            bool              `json:"found"`
	FoodItem         *FoodItem         `json:"food_item,omitempty"`
	NutriScore       *NutriScore       `json:"nutri_score,omitempty"`
	HealthAssessment *HealthAssessment `json:"health_assessment,omitempty"`
	ScanTimestamp    time.Time         `json:"scan_timestamp"`
}

// NutritionSummary is the per-100g read projection shown on product pages.
type NutritionSummary struct {
	EnergyKcal    *decimal.Decimal `json:"energy_kcal"`
	Fat           *decimal.Decimal `json:"fat"`
	SaturatedFat  *decimal.Decimal `json:"saturated_fat"`
	Carbohydrates *decimal.Decimal `json:"carbohydrates"`
	Sugars        *decimal.Decimal `json:"sugars"`
	Fiber         *decimal.Decimal `json:"fiber"`
	Protein       *decimal.Decimal `json:"protein"`
	Salt          *decimal.Decimal `json:"salt"`
}

// HealthScore is the computed scoring output for one item under one
// nutrition profile.
type HealthScore struct {
	NutriScore       NutriScore       `json:"nutri_score"`
	HealthAssessment HealthAssessment `json:"health_assessment"`
	ScoreFactors     map[string]any   `json:"score_factors"`
	Recommendations  []string         `json:"recommendations"`
}

func checkLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return &ValidationError{Field: field, Reason: "exceeds maximum length"}
	}
	return nil
}

func checkEnums(score *NutriScore, assessment *HealthAssessment) error {
	if score != nil && !score.Valid() {
		return &ValidationError{Field: "nutri_score", Reason: "must be one of A, B, C, D, E"}
	}
	if assessment != nil && !assessment.Valid() {
		return &ValidationError{Field: "health_assessment", Reason: "unrecognized assessment"}
	}
	return nil
}
