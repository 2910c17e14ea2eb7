package controllers

import (
	"net/http"

	"github.com/appdotbuilder/nutri-scan/models"
	"github.com/appdotbuilder/nutri-scan/services"
	"github.com/appdotbuilder/nutri-scan/utils"

	"github.com/gin-gonic/gin"
)

type BarcodeController struct {
	Barcodes *services.BarcodeService
}

func NewBarcodeController(barcodes *services.BarcodeService) *BarcodeController {
	return &BarcodeController{Barcodes: barcodes}
}

// POST /barcodes
func (bc *BarcodeController) Create(c *gin.Context) {
	var in models.BarcodeCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.AsValidationError(err))
		return
	}
	barcode, err := bc.Barcodes.Create(&in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, barcode)
}

// GET /barcodes/:id
func (bc *BarcodeController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	barcode, err := bc.Barcodes.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, barcode)
}

// DELETE /barcodes/:id
func (bc *BarcodeController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := bc.Barcodes.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
