package services

import (
	"errors"

	"github.com/appdotbuilder/nutri-scan/models"

	"gorm.io/gorm"
)

type NutritionProfileService struct {
	db *gorm.DB
}

func NewNutritionProfileService(db *gorm.DB) *NutritionProfileService {
	return &NutritionProfileService{db: db}
}

func (s *NutritionProfileService) Create(profile *models.NutritionProfile) (*models.NutritionProfile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(profile.Name, 0); err != nil {
		return nil, err
	}
	if err := s.db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &models.UniquenessViolation{Field: "name", Value: profile.Name}
		}
		return nil, err
	}
	return profile, nil
}

func (s *NutritionProfileService) Get(id uint) (*models.NutritionProfile, error) {
	var profile models.NutritionProfile
	if err := s.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *NutritionProfileService) GetByName(name string) (*models.NutritionProfile, error) {
	var profile models.NutritionProfile
	if err := s.db.Where("name = ?", name).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *NutritionProfileService) List() ([]models.NutritionProfile, error) {
	var profiles []models.NutritionProfile
	if err := s.db.Order("name").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *NutritionProfileService) Update(id uint, updated *models.NutritionProfile) (*models.NutritionProfile, error) {
	var profile models.NutritionProfile
	if err := s.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	if updated.Name != "" && updated.Name != profile.Name {
		if err := s.checkNameFree(updated.Name, id); err != nil {
			return nil, err
		}
		profile.Name = updated.Name
	}
	profile.Description = updated.Description
	profile.MaxFatPer100g = updated.MaxFatPer100g
	profile.MaxSaturatedFatPer100g = updated.MaxSaturatedFatPer100g
	profile.MaxSugarsPer100g = updated.MaxSugarsPer100g
	profile.MaxSaltPer100g = updated.MaxSaltPer100g
	profile.MinFiberPer100g = updated.MinFiberPer100g
	profile.MinProteinPer100g = updated.MinProteinPer100g
	if updated.NutriScoreThresholds != nil {
		profile.NutriScoreThresholds = updated.NutriScoreThresholds
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *NutritionProfileService) Delete(id uint) error {
	var profile models.NutritionProfile
	if err := s.db.First(&profile, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&profile).Error
}

func (s *NutritionProfileService) checkNameFree(name string, selfID uint) error {
	var existing models.NutritionProfile
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil && existing.ID != selfID {
		return &models.UniquenessViolation{Field: "name", Value: name}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
