package controllers

import (
	"EmberHouse/services"
	"EmberHouse/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	LocationService *services.LocationService
}

func NewLocationController() *LocationController {
	return &LocationController{
		LocationService: services.NewLocationService(),
	}
}

func (ctl *LocationController) GetAllLocations(c *gin.Context) {
	locations := ctl.LocationService.GetAllLocations()
	utils.SuccessResponse(c, http.StatusOK, "Locations fetched successfully", locations)
}

func (ctl *LocationController) GetNearestLocations(c *gin.Context) {
	latitudeStr := c.Query("latitude")
	longitudeStr := c.Query("longitude")

	latitude, err := strconv.ParseFloat(latitudeStr, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid latitude")
		return
	}

	longitude, err := strconv.ParseFloat(longitudeStr, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	nearby := ctl.LocationService.GetNearestLocations(latitude, longitude)
	utils.SuccessResponse(c, http.StatusOK, "Nearest locations fetched successfully", nearby)
}
