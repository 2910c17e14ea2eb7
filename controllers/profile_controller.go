package controllers

import (
	"net/http"

	"github.com/appdotbuilder/nutri-scan/models"
	"github.com/appdotbuilder/nutri-scan/services"
	"github.com/appdotbuilder/nutri-scan/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profiles *services.NutritionProfileService
}

func NewProfileController(profiles *services.NutritionProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

// POST /profiles
func (pc *ProfileController) Create(c *gin.Context) {
	var profile models.NutritionProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		writeError(c, utils.AsValidationError(err))
		return
	}
	created, err := pc.Profiles.Create(&profile)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /profiles
func (pc *ProfileController) List(c *gin.Context) {
	profiles, err := pc.Profiles.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GET /profiles/:id
func (pc *ProfileController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	profile, err := pc.Profiles.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /profiles/:id
func (pc *ProfileController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var profile models.NutritionProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		writeError(c, utils.AsValidationError(err))
		return
	}
	updated, err := pc.Profiles.Update(id, &profile)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /profiles/:id
func (pc *ProfileController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := pc.Profiles.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
