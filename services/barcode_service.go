package services

import (
	"errors"

	"github.com/appdotbuilder/nutri-scan/models"

	"gorm.io/gorm"
)

type BarcodeService struct {
	db *gorm.DB
}

func NewBarcodeService(db *gorm.DB) *BarcodeService {
	return &BarcodeService{db: db}
}

// Create binds a new code to an existing item. The referenced item is
// checked before the write; duplicates surface as a UniquenessViolation
// whether they are caught by the pre-check or by the unique index.
func (s *BarcodeService) Create(in *models.BarcodeCreate) (*models.Barcode, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.FoodItem{}).Where("id = ?", in.FoodItemID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, &models.ReferentialIntegrityError{Entity: "barcode", FoodItemID: in.FoodItemID}
	}

	var existing models.Barcode
	err := s.db.Where("code = ?", in.Code).First(&existing).Error
	if err == nil {
		return nil, &models.UniquenessViolation{Field: "code", Value: in.Code}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	barcode := &models.Barcode{
		Code:        in.Code,
		BarcodeType: in.BarcodeType,
		FoodItemID:  in.FoodItemID,
	}
	if err := s.db.Create(barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &models.UniquenessViolation{Field: "code", Value: in.Code}
		}
		return nil, err
	}
	return barcode, nil
}

func (s *BarcodeService) Get(id uint) (*models.Barcode, error) {
	var barcode models.Barcode
	if err := s.db.First(&barcode, id).Error; err != nil {
		return nil, err
	}
	return &barcode, nil
}

func (s *BarcodeService) ListForItem(foodItemID uint) ([]models.Barcode, error) {
	var barcodes []models.Barcode
	err := s.db.Where("food_item_id = ?", foodItemID).Order("created_at").Find(&barcodes).Error
	if err != nil {
		return nil, err
	}
	return barcodes, nil
}

func (s *BarcodeService) Delete(id uint) error {
	var barcode models.Barcode
	if err := s.db.First(&barcode, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&barcode).Error
}
