package route

import (
	"EmberHouse/controllers"
	"EmberHouse/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	menuController := controllers.NewMenuController()
	locationController := controllers.NewLocationController()

	// Register the routes
	v1Routes := router.Group("/v1")
	{
		handlers.RegisterMenuRoutes(v1Routes, menuController)
		handlers.RegisterLocationRoutes(v1Routes, locationController)
	}
}
