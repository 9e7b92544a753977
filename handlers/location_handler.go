package handlers

import (
	"EmberHouse/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterLocationRoutes(router *gin.RouterGroup, locationController *controllers.LocationController) {
	locationGroup := router.Group("/locations")
	{
		locationGroup.GET("/", locationController.GetAllLocations)

		locationGroup.GET("/nearest", locationController.GetNearestLocations)
	}
}
