package services

import (
	"strings"
	"testing"

	"github.com/appdotbuilder/nutri-scan/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCreateInput(t *testing.T) *models.FoodItemCreate {
	score := models.NutriScoreC
	assessment := models.AssessmentModerate
	return &models.FoodItemCreate{
		Name:             "Dark Chocolate 70%",
		Brand:            strptr("Cocoa Works"),
		Description:      strptr("Bittersweet dark chocolate bar"),
		EnergyKJ:         dec(t, "2417"),
		EnergyKcal:       dec(t, "579"),
		Fat:              dec(t, "42.6"),
		SaturatedFat:     dec(t, "24.5"),
		Carbohydrates:    dec(t, "45.9"),
		Sugars:           dec(t, "23.9"),
		Fiber:            dec(t, "10.9"),
		Protein:          dec(t, "7.8"),
		Salt:             dec(t, "0.0225"),
		Sodium:           dec(t, "0.008"),
		NutriScore:       &score,
		HealthAssessment: &assessment,
		Ingredients:      []string{"cocoa mass", "sugar", "cocoa butter"},
		Allergens:        []string{"milk", "soy"},
		Categories:       []string{"snacks", "chocolate"},
	}
}

func TestFoodItemService_CreateAndReadBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodItemService(db)

	in := fullCreateInput(t)
	created, err := svc.Create(in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(created.ID)
	require.NoError(t, err)

	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, *in.Brand, got.Brand)
	assert.Equal(t, *in.Description, got.Description)

	// decimal precision must survive the round trip
	nutrients := []struct {
		name       string
		want, have *decimal.Decimal
	}{
		{"energy_kj", in.EnergyKJ, got.EnergyKJ},
		{"energy_kcal", in.EnergyKcal, got.EnergyKcal},
		{"fat", in.Fat, got.Fat},
		{"saturated_fat", in.SaturatedFat, got.SaturatedFat},
		{"carbohydrates", in.Carbohydrates, got.Carbohydrates},
		{"sugars", in.Sugars, got.Sugars},
		{"fiber", in.Fiber, got.Fiber},
		{"protein", in.Protein, got.Protein},
		{"salt", in.Salt, got.Salt},
		{"sodium", in.Sodium, got.Sodium},
	}
	for _, n := range nutrients {
		require.NotNil(t, n.have, n.name)
		assert.True(t, n.want.Equal(*n.have), "%s: want %s, got %s", n.name, n.want, n.have)
	}

	require.NotNil(t, got.NutriScore)
	assert.Equal(t, models.NutriScoreC, *got.NutriScore)
	require.NotNil(t, got.HealthAssessment)
	assert.Equal(t, models.AssessmentModerate, *got.HealthAssessment)

	assert.Equal(t, []string{"cocoa mass", "sugar", "cocoa butter"}, []string(got.Ingredients))
	assert.Equal(t, []string{"milk", "soy"}, []string(got.Allergens))
	assert.Equal(t, []string{"snacks", "chocolate"}, []string(got.Categories))
}

func TestFoodItemService_NameLengthBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodItemService(db)

	t.Run("255 characters accepted", func(t *testing.T) {
		item, err := svc.Create(&models.FoodItemCreate{Name: strings.Repeat("a", 255)})
		require.NoError(t, err)
		assert.NotZero(t, item.ID)
	})

	t.Run("256 characters rejected", func(t *testing.T) {
		_, err := svc.Create(&models.FoodItemCreate{Name: strings.Repeat("a", 256)})
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		_, err := svc.Create(&models.FoodItemCreate{})
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})
}

func TestFoodItemService_InvalidEnumRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodItemService(db)

	bad := models.NutriScore("F")
	_, err := svc.Create(&models.FoodItemCreate{Name: "Mystery Snack", NutriScore: &bad})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nutri_score", verr.Field)
}

func TestFoodItemService_PartialUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodItemService(db)

	created := createItem(t, db, fullCreateInput(t))

	updated, err := svc.Update(created.ID, &models.FoodItemUpdate{
		Brand:  strptr("Cocoa Works Ltd"),
		Sugars: dec(t, "19.5"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Cocoa Works Ltd", updated.Brand)
	assert.True(t, updated.Sugars.Equal(*dec(t, "19.5")))
	// untouched fields keep their values
	assert.Equal(t, created.Name, updated.Name)
	assert.True(t, updated.Fat.Equal(*created.Fat))
}

func TestFoodItemService_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodItemService(db)
	barcodes := NewBarcodeService(db)
	scans := NewScanService(db, nil)

	item := createItem(t, db, &models.FoodItemCreate{Name: "Oat Drink"})
	_, err := barcodes.Create(&models.BarcodeCreate{Code: "4006381333931", BarcodeType: "EAN13", FoodItemID: item.ID})
	require.NoError(t, err)
	_, err = scans.Scan("4006381333931", ScanMeta{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID))

	var barcodeCount, historyCount int64
	require.NoError(t, db.Model(&models.Barcode{}).Where("food_item_id = ?", item.ID).Count(&barcodeCount).Error)
	require.NoError(t, db.Model(&models.ScanHistory{}).Where("food_item_id = ?", item.ID).Count(&historyCount).Error)
	assert.Zero(t, barcodeCount)
	assert.Zero(t, historyCount)
}

func TestFoodItemService_ListFiltersByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodItemService(db)

	createItem(t, db, &models.FoodItemCreate{Name: "Apple Juice"})
	createItem(t, db, &models.FoodItemCreate{Name: "Orange Juice"})
	createItem(t, db, &models.FoodItemCreate{Name: "Rye Bread"})

	juices, err := svc.List("Juice", 50, 0)
	require.NoError(t, err)
	require.Len(t, juices, 2)
	assert.Equal(t, "Apple Juice", juices[0].Name)
	assert.Equal(t, "Orange Juice", juices[1].Name)

	all, err := svc.List("", 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
