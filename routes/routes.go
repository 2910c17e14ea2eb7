package routes

import (
	"github.com/appdotbuilder/nutri-scan/config"
	"github.com/appdotbuilder/nutri-scan/controllers"
	"github.com/appdotbuilder/nutri-scan/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRouter() *gin.Engine {
	return NewRouter(config.DB)
}

func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	feed := services.NewScanFeed()
	itemSvc := services.NewFoodItemService(db)
	barcodeSvc := services.NewBarcodeService(db)
	scanSvc := services.NewScanService(db, feed)
	profileSvc := services.NewNutritionProfileService(db)
	scoringSvc := services.NewScoringService(db)

	items := controllers.NewFoodItemController(itemSvc, barcodeSvc, scanSvc, scoringSvc)
	barcodes := controllers.NewBarcodeController(barcodeSvc)
	scans := controllers.NewScanController(scanSvc, feed)
	profiles := controllers.NewProfileController(profileSvc)

	food := r.Group("/food-items")
	{
		food.POST("", items.Create)
		food.GET("", items.List)
		food.GET("/:id", items.Get)
		food.PUT("/:id", items.Update)
		food.DELETE("/:id", items.Delete)
		food.GET("/:id/nutrition", items.Nutrition)
		food.GET("/:id/barcodes", items.ListBarcodes)
		food.GET("/:id/history", items.History)
		food.POST("/:id/score", items.Score)
	}

	bc := r.Group("/barcodes")
	{
		bc.POST("", barcodes.Create)
		bc.GET("/:id", barcodes.Get)
		bc.DELETE("/:id", barcodes.Delete)
	}

	scan := r.Group("/scan")
	{
		scan.POST("", scans.Scan)
		scan.GET("/recent", scans.Recent)
		scan.GET("/live", scans.Live)
	}

	prof := r.Group("/profiles")
	{
		prof.POST("", profiles.Create)
		prof.GET("", profiles.List)
		prof.GET("/:id", profiles.Get)
		prof.PUT("/:id", profiles.Update)
		prof.DELETE("/:id", profiles.Delete)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
