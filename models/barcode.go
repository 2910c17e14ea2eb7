package models

import "time"

// Barcode binds a scannable code (EAN-13, UPC, …) to exactly one food
// item. Codes are globally unique across the table.
type Barcode struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	BarcodeType string    `gorm:"size:20;not null" json:"barcode_type"`
	FoodItemID  uint      `gorm:"not null;index" json:"food_item_id"`
	CreatedAt   time.Time `json:"created_at"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID" json:"-"`
}

func (Barcode) TableName() string {
	return "barcodes"
}
