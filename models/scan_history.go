package models

import "time"

// ScanHistory is an append-only log row: one successful barcode lookup at
// a point in time. Rows are never updated or deleted.
type ScanHistory struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FoodItemID     uint      `gorm:"not null;index" json:"food_item_id"`
	BarcodeScanned string    `gorm:"size:50;not null" json:"barcode_scanned"`
	ScanTimestamp  time.Time `gorm:"autoCreateTime;index" json:"scan_timestamp"`
	UserAgent      string    `gorm:"size:500" json:"user_agent,omitempty"`
	IPAddress      string    `gorm:"size:45" json:"ip_address,omitempty"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID" json:"-"`
}

func (ScanHistory) TableName() string {
	return "scan_history"
}
