package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paeez96/menu-api/middlewares"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// CreateCategory
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var body struct {
		Name   string  `json:"name" binding:"required"`
		NameFa *string `json:"name_fa"`
		Slug   string  `json:"slug" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.Category{
		Name:   body.Name,
		NameFa: body.NameFa,
		Slug:   body.Slug,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusConflict, errors.New("category slug already exists"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if user, ok := middlewares.CurrentUser(c); ok {
		utils.InfoLogger.Printf("category %q created by %s", category.Slug, user.Username)
	}

	c.JSON(http.StatusCreated, category)
}

// DeleteCategory removes a category together with the menu items it owns.
// Both deletes run in one transaction so a failure leaves nothing half-done.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category id"))
		return
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if user, ok := middlewares.CurrentUser(c); ok {
		utils.InfoLogger.Printf("category %d deleted by %s", id, user.Username)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
