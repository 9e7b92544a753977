package controllers

import (
	"EmberHouse/models"
	"EmberHouse/services"
	"EmberHouse/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuService *services.MenuService
}

func NewMenuController() *MenuController {
	return &MenuController{
		MenuService: services.NewMenuService(),
	}
}

// menuItemResponse decorates a menu item with its display price.
type menuItemResponse struct {
	models.MenuItem
	DisplayPrice string `json:"display_price"`
}

// GetMenu serves the filterable menu view: fetch (whole catalog or one
// category), then filter, sort and paginate with the user-supplied query
// state.
func (ctl *MenuController) GetMenu(c *gin.Context) {
	categoryParam := services.NormalizeQueryParam(c.Query("category"))
	if categoryParam != "" && !services.IsCategory(categoryParam) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Unknown category")
		return
	}

	state := models.FilterState{
		Category: models.Category(categoryParam),
		Search:   services.NormalizeQueryParam(c.Query("search")),
		Sort:     services.ParseSortKey(c.Query("sort")),
		Page:     services.ParsePageParam(c.Query("page")),
	}

	var items []models.MenuItem
	var err error
	if state.Category != "" {
		items, err = ctl.MenuService.FetchCategory(c.Request.Context(), state.Category)
	} else {
		items, err = ctl.MenuService.FetchAll(c.Request.Context())
	}
	if err != nil {
		c.Error(err)
		return
	}

	filtered := services.FilterMenu(items, state)
	sorted := services.SortMenu(filtered, state.Sort)
	paged := services.PaginateMenu(sorted, state.Page, services.MenuPageSize)

	responses := make([]menuItemResponse, 0, len(paged))
	for _, item := range paged {
		responses = append(responses, menuItemResponse{
			MenuItem:     item,
			DisplayPrice: services.FormatCurrency(item.Price),
		})
	}

	totalPages := (len(filtered) + services.MenuPageSize - 1) / services.MenuPageSize

	utils.SuccessResponse(c, http.StatusOK, "Menu fetched successfully", gin.H{
		"items":       responses,
		"page":        state.Page,
		"per_page":    services.MenuPageSize,
		"total":       len(filtered),
		"total_pages": totalPages,
	})
}

// GetCategories serves the canonical category list in display order.
func (ctl *MenuController) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Categories fetched successfully", models.Categories)
}
