package services

import (
	"github.com/appdotbuilder/nutri-scan/models"

	"gorm.io/gorm"
)

type FoodItemService struct {
	db *gorm.DB
}

func NewFoodItemService(db *gorm.DB) *FoodItemService {
	return &FoodItemService{db: db}
}

func (s *FoodItemService) Create(in *models.FoodItemCreate) (*models.FoodItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item := in.Model()
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodItemService) Get(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := s.db.Preload("Barcodes").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns items ordered by name, optionally filtered by a substring
// match on the name.
func (s *FoodItemService) List(query string, limit, offset int) ([]models.FoodItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	tx := s.db.Order("name").Limit(limit).Offset(offset)
	if query != "" {
		tx = tx.Where("name LIKE ?", "%"+query+"%")
	}
	var items []models.FoodItem
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FoodItemService) Update(id uint, in *models.FoodItemUpdate) (*models.FoodItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var item models.FoodItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	in.Apply(&item)
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item together with its barcodes and scan history in
// one transaction, mirroring the cascade the schema declares.
func (s *FoodItemService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.FoodItem
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		if err := tx.Where("food_item_id = ?", id).Delete(&models.Barcode{}).Error; err != nil {
			return err
		}
		if err := tx.Where("food_item_id = ?", id).Delete(&models.ScanHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
