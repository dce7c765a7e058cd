package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu is the public read view: every category in creation order with its
// items nested. Preload fetches the items in a single extra query, so there
// is no per-category lookup and no duplicated category rows from a join.
// The response uses the read projections, not the storage records.
func (mc *MenuController) GetMenu(c *gin.Context) {
	var categories []models.Category
	if err := mc.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("menu_items.id")
	}).Order("categories.id").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	menu := make([]models.CategoryRead, 0, len(categories))
	for _, category := range categories {
		menu = append(menu, models.NewCategoryRead(category))
	}

	c.JSON(http.StatusOK, menu)
}
