package handlers

import (
	"EmberHouse/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMenuRoutes(router *gin.RouterGroup, menuController *controllers.MenuController) {
	menuGroup := router.Group("/menu")
	{
		menuGroup.GET("/", menuController.GetMenu)

		menuGroup.GET("/categories", menuController.GetCategories)
	}
}
