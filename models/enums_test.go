package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNutriScoreValid(t *testing.T) {
	for _, s := range []NutriScore{NutriScoreA, NutriScoreB, NutriScoreC, NutriScoreD, NutriScoreE} {
		assert.True(t, s.Valid(), string(s))
	}
	for _, s := range []NutriScore{"", "F", "a", "AA"} {
		assert.False(t, s.Valid(), string(s))
	}
}

func TestHealthAssessmentValid(t *testing.T) {
	for _, a := range []HealthAssessment{AssessmentGood, AssessmentModerate, AssessmentNotRecommended} {
		assert.True(t, a.Valid(), string(a))
	}
	for _, a := range []HealthAssessment{"", "good", "Bad", "Not Recommended"} {
		assert.False(t, a.Valid(), string(a))
	}
}
