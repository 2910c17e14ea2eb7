package services

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/appdotbuilder/nutri-scan/models"

	"gorm.io/gorm"
)

// ScanMeta carries optional requester details logged with each scan.
type ScanMeta struct {
	UserAgent string
	IPAddress string
}

type ScanService struct {
	db   *gorm.DB
	feed *ScanFeed
}

// NewScanService wires the service to a database and an optional live
// feed; pass nil to skip broadcasting.
func NewScanService(db *gorm.DB, feed *ScanFeed) *ScanService {
	return &ScanService{db: db, feed: feed}
}

// Scan resolves a barcode string against the catalog. A hit appends one
// immutable history row and publishes a feed event; a miss is reported in
// the result and leaves no trace in history.
func (s *ScanService) Scan(code string, meta ScanMeta) (*models.ScanResult, error) {
	if code == "" {
		return nil, &models.ValidationError{Field: "barcode", Reason: "required"}
	}

	var barcode models.Barcode
	err := s.db.Preload("FoodItem").Where("code = ?", code).First(&barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		scansTotal.WithLabelValues("miss").Inc()
		return &models.ScanResult{
			Barcode:       code,
			Found:         false,
			ScanTimestamp: time.Now().UTC(),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	entry := models.ScanHistory{
		FoodItemID:     barcode.FoodItemID,
		BarcodeScanned: code,
		UserAgent:      clip(meta.UserAgent, 500),
		IPAddress:      clip(meta.IPAddress, 45),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	scansTotal.WithLabelValues("hit").Inc()

	item := barcode.FoodItem
	result := &models.ScanResult{
		Barcode:       code,
		Found:         true,
		FoodItem:      item,
		ScanTimestamp: entry.ScanTimestamp,
	}
	if item != nil {
		result.NutriScore = item.NutriScore
		result.HealthAssessment = item.HealthAssessment
	}

	if s.feed != nil {
		s.feed.Broadcast(map[string]any{
			"kind": "scan.recorded",
			"scan": result,
		})
	}
	return result, nil
}

// clip bounds caller-supplied metadata to its column size so an
// oversized header cannot fail the insert.
func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// ItemHistory lists the scan log for one item, newest first.
func (s *ScanService) ItemHistory(foodItemID uint, limit int) ([]models.ScanHistory, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var rows []models.ScanHistory
	err := s.db.Where("food_item_id = ?", foodItemID).
		Order("scan_timestamp DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Recent lists the latest scans across all items.
func (s *ScanService) Recent(limit int) ([]models.ScanHistory, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var rows []models.ScanHistory
	err := s.db.Order("scan_timestamp DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
