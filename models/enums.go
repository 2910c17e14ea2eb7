package models

// NutriScore is the A (best) to E (worst) letter grade summarizing a
// product's nutritional quality.
type NutriScore string

const (
	NutriScoreA NutriScore = "A"
	NutriScoreB NutriScore = "B"
	NutriScoreC NutriScore = "C"
	NutriScoreD NutriScore = "D"
	NutriScoreE NutriScore = "E"
)

func (s NutriScore) Valid() bool {
	switch s {
	case NutriScoreA, NutriScoreB, NutriScoreC, NutriScoreD, NutriScoreE:
		return true
	}
	return false
}

// HealthAssessment is the three-level qualitative verdict derived from
// nutrient thresholds.
type HealthAssessment string

const (
	AssessmentGood           HealthAssessment = "Good for health"
	AssessmentModerate       HealthAssessment = "Moderate"
	AssessmentNotRecommended HealthAssessment = "Not recommended"
)

func (a HealthAssessment) Valid() bool {
	switch a {
	case AssessmentGood, AssessmentModerate, AssessmentNotRecommended:
		return true
	}
	return false
}
