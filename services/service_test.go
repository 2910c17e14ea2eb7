package services

import (
	"testing"

	"github.com/appdotbuilder/nutri-scan/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.FoodItem{},
		&models.Barcode{},
		&models.ScanHistory{},
		&models.NutritionProfile{},
	))
	return db
}

func dec(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return &d
}

func strptr(s string) *string { return &s }

func createItem(t *testing.T, db *gorm.DB, in *models.FoodItemCreate) *models.FoodItem {
	t.Helper()
	item, err := NewFoodItemService(db).Create(in)
	require.NoError(t, err)
	return item
}
