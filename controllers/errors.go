package controllers

import (
	"errors"
	"net/http"

	"github.com/appdotbuilder/nutri-scan/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeError maps the schema layer's error taxonomy onto HTTP statuses:
// validation 400, uniqueness conflict 409, dangling reference 422,
// missing row 404, everything else 500.
func writeError(c *gin.Context, err error) {
	var (
		validation *models.ValidationError
		conflict   *models.UniquenessViolation
		dangling   *models.ReferentialIntegrityError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "field": validation.Field})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error(), "field": conflict.Field})
	case errors.As(err, &dangling):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": dangling.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
