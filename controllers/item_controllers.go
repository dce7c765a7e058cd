package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
	"gorm.io/gorm"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

var errCategoryRef = errors.New("category_id does not reference an existing category")

// itemUpdate is the allow-list for partial updates. Every field is a pointer
// so "absent from the body" and "set to zero value" stay distinguishable.
// The item id is deliberately not here: it cannot be changed through PUT.
type itemUpdate struct {
	CategoryID    *uint    `json:"category_id"`
	Name          *string  `json:"name"`
	NameFa        *string  `json:"name_fa"`
	Description   *string  `json:"description"`
	DescriptionFa *string  `json:"description_fa"`
	Price         *float64 `json:"price"`
	Rating        *float64 `json:"rating"`
	Calories      *int     `json:"calories"`
	Time          *string  `json:"time"`
	IngredientsEn *string  `json:"ingredients_en"`
	IngredientsFa *string  `json:"ingredients_fa"`
	ImageUrl      *string  `json:"image_url"`
	IsAvailable   *bool    `json:"is_available"`
}

func (u *itemUpdate) apply(item *models.MenuItem) {
	if u.CategoryID != nil {
		item.CategoryID = *u.CategoryID
	}
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.NameFa != nil {
		item.NameFa = u.NameFa
	}
	if u.Description != nil {
		item.Description = u.Description
	}
	if u.DescriptionFa != nil {
		item.DescriptionFa = u.DescriptionFa
	}
	if u.Price != nil {
		item.Price = *u.Price
	}
	if u.Rating != nil {
		item.Rating = *u.Rating
	}
	if u.Calories != nil {
		item.Calories = *u.Calories
	}
	if u.Time != nil {
		item.Time = *u.Time
	}
	if u.IngredientsEn != nil {
		item.IngredientsEn = *u.IngredientsEn
	}
	if u.IngredientsFa != nil {
		item.IngredientsFa = *u.IngredientsFa
	}
	if u.ImageUrl != nil {
		item.ImageUrl = u.ImageUrl
	}
	if u.IsAvailable != nil {
		item.IsAvailable = *u.IsAvailable
	}
}

func (ic *ItemController) categoryExists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateItem
func (ic *ItemController) CreateItem(c *gin.Context) {
	var body struct {
		CategoryID    uint    `json:"category_id" binding:"required"`
		Name          string  `json:"name" binding:"required"`
		NameFa        *string `json:"name_fa"`
		Description   *string `json:"description"`
		DescriptionFa *string `json:"description_fa"`
		Price         float64 `json:"price" binding:"required,gt=0"`
		Rating        float64 `json:"rating"`
		Calories      int     `json:"calories"`
		Time          string  `json:"time"`
		IngredientsEn string  `json:"ingredients_en"`
		IngredientsFa string  `json:"ingredients_fa"`
		ImageUrl      *string `json:"image_url"`
		IsAvailable   *bool   `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		CategoryID:    body.CategoryID,
		Name:          body.Name,
		NameFa:        body.NameFa,
		Description:   body.Description,
		DescriptionFa: body.DescriptionFa,
		Price:         body.Price,
		Rating:        body.Rating,
		Calories:      body.Calories,
		Time:          body.Time,
		IngredientsEn: body.IngredientsEn,
		IngredientsFa: body.IngredientsFa,
		ImageUrl:      body.ImageUrl,
		IsAvailable:   true,
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}

	// The reference check and the insert share one transaction so the
	// category can't vanish in between.
	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := ic.categoryExists(tx, item.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return errCategoryRef
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		if errors.Is(err, errCategoryRef) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem applies a partial update: only fields present in the body
// change, everything else keeps its stored value.
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	var body itemUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	err = ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		if body.CategoryID != nil {
			ok, err := ic.categoryExists(tx, *body.CategoryID)
			if err != nil {
				return err
			}
			if !ok {
				return errCategoryRef
			}
		}
		body.apply(&item)
		return tx.Save(&item).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		case errors.Is(err, errCategoryRef):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	var item models.MenuItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
