package config

import (
	"fmt"
	"log"
	"os"

	"github.com/appdotbuilder/nutri-scan/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.FoodItem{},
		&models.Barcode{},
		&models.ScanHistory{},
		&models.NutritionProfile{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := seedDefaultProfile(DB); err != nil {
		log.Fatalf("Seeding default profile failed: %v", err)
	}
}

// seedDefaultProfile makes sure scoring always has a profile to fall back
// on. Threshold values follow common per-100g "high in" labelling cutoffs.
func seedDefaultProfile(db *gorm.DB) error {
	dec := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	profile := models.NutritionProfile{
		Name:                   models.DefaultProfileName,
		Description:            "Default thresholds for the general adult population",
		MaxFatPer100g:          dec("17.5"),
		MaxSaturatedFatPer100g: dec("5"),
		MaxSugarsPer100g:       dec("22.5"),
		MaxSaltPer100g:         dec("1.5"),
		MinFiberPer100g:        dec("3"),
		MinProteinPer100g:      dec("5"),
		NutriScoreThresholds: datatypes.JSONMap{
			"A": -1, "B": 2, "C": 10, "D": 18,
		},
	}
	return db.Where("name = ?", profile.Name).FirstOrCreate(&profile).Error
}
