package controllers

import (
	"net/http"
	"strconv"

	"github.com/appdotbuilder/nutri-scan/models"
	"github.com/appdotbuilder/nutri-scan/services"
	"github.com/appdotbuilder/nutri-scan/utils"

	"github.com/gin-gonic/gin"
)

type FoodItemController struct {
	Items    *services.FoodItemService
	Barcodes *services.BarcodeService
	Scans    *services.ScanService
	Scoring  *services.ScoringService
}

func NewFoodItemController(items *services.FoodItemService, barcodes *services.BarcodeService, scans *services.ScanService, scoring *services.ScoringService) *FoodItemController {
	return &FoodItemController{Items: items, Barcodes: barcodes, Scans: scans, Scoring: scoring}
}

// POST /food-items
func (fc *FoodItemController) Create(c *gin.Context) {
	var in models.FoodItemCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.AsValidationError(err))
		return
	}
	item, err := fc.Items.Create(&in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GET /food-items?q=chocolate&limit=50&offset=0
func (fc *FoodItemController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	items, err := fc.Items.List(c.Query("q"), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /food-items/:id
func (fc *FoodItemController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := fc.Items.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /food-items/:id
func (fc *FoodItemController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in models.FoodItemUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.AsValidationError(err))
		return
	}
	item, err := fc.Items.Update(id, &in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /food-items/:id
func (fc *FoodItemController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := fc.Items.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /food-items/:id/nutrition
func (fc *FoodItemController) Nutrition(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := fc.Items.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item.Nutrition())
}

// GET /food-items/:id/barcodes
func (fc *FoodItemController) ListBarcodes(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := fc.Items.Get(id); err != nil {
		writeError(c, err)
		return
	}
	barcodes, err := fc.Barcodes.ListForItem(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, barcodes)
}

// GET /food-items/:id/history
func (fc *FoodItemController) History(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := fc.Items.Get(id); err != nil {
		writeError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	rows, err := fc.Scans.ItemHistory(id, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /food-items/:id/score?profile=Low%20Sodium
func (fc *FoodItemController) Score(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	score, err := fc.Scoring.ScoreAndStore(id, c.Query("profile"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
