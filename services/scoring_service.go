package services

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/appdotbuilder/nutri-scan/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScoringService turns an item's per-100g nutrients into a Nutri-Score
// grade and a qualitative assessment under a nutrition profile. The grade
// follows the classic point model: unfavorable points (energy, sugars,
// saturated fat, sodium) minus favorable points (fiber, protein), mapped
// to a letter through the profile's cutoffs.
type ScoringService struct {
	db *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{db: db}
}

// Per-100g point cutoffs; crossing the nth value is worth n+1 points.
var (
	energyKJCuts = []float64{335, 670, 1005, 1340, 1675, 2010, 2345, 2680, 3015, 3350}
	sugarsCuts   = []float64{4.5, 9, 13.5, 18, 22.5, 27, 31, 36, 40, 45}
	satFatCuts   = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sodiumMgCuts = []float64{90, 180, 270, 360, 450, 540, 630, 720, 810, 900}
	fiberCuts    = []float64{0.9, 1.9, 2.8, 3.7, 4.7}
	proteinCuts  = []float64{1.6, 3.2, 4.8, 6.4, 8.0}
)

// Default letter cutoffs: total points ≤ value → that grade, else E.
var defaultGradeCutoffs = map[models.NutriScore]float64{
	models.NutriScoreA: -1,
	models.NutriScoreB: 2,
	models.NutriScoreC: 10,
	models.NutriScoreD: 18,
}

// ScoreItem loads the item and profile by id/name and computes the score.
// An empty profileName selects the default profile.
func (s *ScoringService) ScoreItem(foodItemID uint, profileName string) (*models.HealthScore, error) {
	var item models.FoodItem
	if err := s.db.First(&item, foodItemID).Error; err != nil {
		return nil, err
	}
	if profileName == "" {
		profileName = models.DefaultProfileName
	}
	var profile models.NutritionProfile
	if err := s.db.Where("name = ?", profileName).First(&profile).Error; err != nil {
		return nil, err
	}
	return s.Score(&item, &profile), nil
}

// ScoreAndStore computes the score and persists the resulting grade and
// assessment on the item.
func (s *ScoringService) ScoreAndStore(foodItemID uint, profileName string) (*models.HealthScore, error) {
	score, err := s.ScoreItem(foodItemID, profileName)
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&models.FoodItem{}).Where("id = ?", foodItemID).Updates(map[string]any{
		"nutri_score":       score.NutriScore,
		"health_assessment": score.HealthAssessment,
	}).Error
	if err != nil {
		return nil, err
	}
	return score, nil
}

// Score is the pure calculation; it touches no storage.
func (s *ScoringService) Score(item *models.FoodItem, profile *models.NutritionProfile) *models.HealthScore {
	energyKJ, hasEnergy := floatOf(item.EnergyKJ)
	if !hasEnergy {
		if kcal, ok := floatOf(item.EnergyKcal); ok {
			energyKJ = kcal * 4.184
		}
	}
	sodiumMg := 0.0
	if na, ok := floatOf(item.Sodium); ok {
		sodiumMg = na * 1000
	} else if salt, ok := floatOf(item.Salt); ok {
		// salt ≈ sodium × 2.5
		sodiumMg = salt / 2.5 * 1000
	}
	sugars, _ := floatOf(item.Sugars)
	satFat, _ := floatOf(item.SaturatedFat)
	fiber, _ := floatOf(item.Fiber)
	protein, _ := floatOf(item.Protein)

	negative := pointsFor(energyKJ, energyKJCuts) +
		pointsFor(sugars, sugarsCuts) +
		pointsFor(satFat, satFatCuts) +
		pointsFor(sodiumMg, sodiumMgCuts)
	positive := pointsFor(fiber, fiberCuts) + pointsFor(protein, proteinCuts)
	total := negative - positive

	grade := gradeFor(float64(total), profile.NutriScoreThresholds)
	violations, recommendations := checkThresholds(item, profile)

	assessment := models.AssessmentGood
	switch {
	case len(violations) >= 2 || grade == models.NutriScoreE:
		assessment = models.AssessmentNotRecommended
	case len(violations) == 1 || grade == models.NutriScoreD:
		assessment = models.AssessmentModerate
	}

	factors := map[string]any{
		"energy_points":        pointsFor(energyKJ, energyKJCuts),
		"sugars_points":        pointsFor(sugars, sugarsCuts),
		"saturated_fat_points": pointsFor(satFat, satFatCuts),
		"sodium_points":        pointsFor(sodiumMg, sodiumMgCuts),
		"fiber_points":         pointsFor(fiber, fiberCuts),
		"protein_points":       pointsFor(protein, proteinCuts),
		"total_points":         total,
		"profile":              profile.Name,
		"threshold_violations": violations,
	}

	return &models.HealthScore{
		NutriScore:       grade,
		HealthAssessment: assessment,
		ScoreFactors:     factors,
		Recommendations:  recommendations,
	}
}

// checkThresholds compares the item against the profile's per-100g limits
// and returns the names of the violated ones plus reader-facing advice.
// A limit only fires when both the nutrient and the threshold are set.
func checkThresholds(item *models.FoodItem, profile *models.NutritionProfile) ([]string, []string) {
	var violations, recommendations []string

	exceedsMax := func(name string, value, limit *decimal.Decimal, advice string) {
		v, okV := floatOf(value)
		l, okL := floatOf(limit)
		if okV && okL && v > l {
			violations = append(violations, name)
			recommendations = append(recommendations, fmt.Sprintf("%s (%.1fg per 100g exceeds the %.1fg limit)", advice, v, l))
		}
	}
	belowMin := func(name string, value, limit *decimal.Decimal, advice string) {
		v, okV := floatOf(value)
		l, okL := floatOf(limit)
		if okV && okL && v < l {
			violations = append(violations, name)
			recommendations = append(recommendations, fmt.Sprintf("%s (%.1fg per 100g is under the %.1fg minimum)", advice, v, l))
		}
	}

	exceedsMax("fat", item.Fat, profile.MaxFatPer100g, "High in fat; prefer lower-fat alternatives")
	exceedsMax("saturated_fat", item.SaturatedFat, profile.MaxSaturatedFatPer100g, "High in saturated fat; shift toward unsaturated fats")
	exceedsMax("sugars", item.Sugars, profile.MaxSugarsPer100g, "High in sugars; choose options with less sugar")
	exceedsMax("salt", item.Salt, profile.MaxSaltPer100g, "High in salt; look for lower-sodium options")
	belowMin("fiber", item.Fiber, profile.MinFiberPer100g, "Low in fiber; whole grains, fruit and vegetables help")
	belowMin("protein", item.Protein, profile.MinProteinPer100g, "Low in protein for this dietary profile")

	return violations, recommendations
}

func gradeFor(total float64, thresholds map[string]any) models.NutriScore {
	for _, grade := range []models.NutriScore{models.NutriScoreA, models.NutriScoreB, models.NutriScoreC, models.NutriScoreD} {
		cutoff := defaultGradeCutoffs[grade]
		if v, ok := numericThreshold(thresholds, string(grade)); ok {
			cutoff = v
		}
		if total <= cutoff {
			return grade
		}
	}
	return models.NutriScoreE
}

// numericThreshold reads a cutoff out of the free-form JSON map, tolerating
// the numeric types JSON round-trips produce.
func numericThreshold(thresholds map[string]any, key string) (float64, bool) {
	if thresholds == nil {
		return 0, false
	}
	switch v := thresholds[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func pointsFor(value float64, cuts []float64) int {
	points := 0
	for _, cut := range cuts {
		if value > cut {
			points++
		}
	}
	return points
}

func floatOf(d *decimal.Decimal) (float64, bool) {
	if d == nil {
		return 0, false
	}
	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
