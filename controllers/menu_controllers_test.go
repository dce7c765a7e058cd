package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/paeez96/menu-api/controllers"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
)

func setupTestDBForMenu(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:menu_test?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.MenuItem{}); err != nil {
		t.Fatal(err)
	}
	db.Exec("DELETE FROM menu_items")
	db.Exec("DELETE FROM categories")
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	r.GET("/api/menu", menuCtrl.GetMenu)
	return r
}

func getMenu(t *testing.T, r *gin.Engine) []models.CategoryRead {
	req, err := http.NewRequest("GET", "/api/menu", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu []models.CategoryRead
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	return menu
}

func TestGetMenuEmptyCategory(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMenu(t)
	r := setupMenuRouter(db)

	category := models.Category{Name: "Seafood", Slug: "seafood"}
	assert.NoError(t, db.Create(&category).Error)

	menu := getMenu(t, r)
	assert.Len(t, menu, 1)
	assert.Equal(t, "seafood", menu[0].Slug)
	assert.NotNil(t, menu[0].Items)
	assert.Len(t, menu[0].Items, 0, "a fresh category shows an empty item list")
}

func TestGetMenuNestsItemsPerCategory(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMenu(t)
	r := setupMenuRouter(db)

	steaks := models.Category{Name: "Signature Steaks", Slug: "signature-steaks"}
	seafood := models.Category{Name: "Seafood", Slug: "seafood"}
	assert.NoError(t, db.Create(&steaks).Error)
	assert.NoError(t, db.Create(&seafood).Error)

	items := []models.MenuItem{
		{CategoryID: steaks.ID, Name: "Ribeye Steak", Price: 1250000, IsAvailable: true},
		{CategoryID: steaks.ID, Name: "T-Bone Special", Price: 1400000, IsAvailable: true},
		{CategoryID: seafood.ID, Name: "Grilled Salmon", Price: 1800000, IsAvailable: true},
	}
	for i := range items {
		assert.NoError(t, db.Create(&items[i]).Error)
	}

	menu := getMenu(t, r)
	// Categories come back once each, in creation order, even though two
	// items hang off the first one.
	assert.Len(t, menu, 2)
	assert.Equal(t, steaks.ID, menu[0].ID)
	assert.Equal(t, seafood.ID, menu[1].ID)
	assert.Len(t, menu[0].Items, 2)
	assert.Len(t, menu[1].Items, 1)
	assert.Equal(t, "Ribeye Steak", menu[0].Items[0].Name)
	assert.Equal(t, "Grilled Salmon", menu[1].Items[0].Name)
}

func TestGetMenuRoundTripAfterCreate(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMenu(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	menuCtrl := controllers.NewMenuController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	itemCtrl := controllers.NewItemController(db)
	r.GET("/api/menu", menuCtrl.GetMenu)
	r.POST("/api/categories", categoryCtrl.CreateCategory)
	r.POST("/api/items", itemCtrl.CreateItem)

	w := postJSON(t, r, "/api/categories", gin.H{"name": "Desserts", "slug": "desserts"})
	assert.Equal(t, http.StatusCreated, w.Code)

	menu := getMenu(t, r)
	assert.Len(t, menu, 1)
	assert.Len(t, menu[0].Items, 0)

	w = postJSON(t, r, "/api/items", gin.H{"category_id": menu[0].ID, "name": "Baklava", "price": 120000})
	assert.Equal(t, http.StatusCreated, w.Code)

	menu = getMenu(t, r)
	assert.Len(t, menu, 1)
	assert.Len(t, menu[0].Items, 1)
	assert.Equal(t, "Baklava", menu[0].Items[0].Name)
}
