package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/paeez96/menu-api/controllers"
	"github.com/paeez96/menu-api/middlewares"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
)

func setupTestDBForAuth(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:auth_test?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.MenuItem{}, &models.DailyStat{}); err != nil {
		t.Fatal(err)
	}
	db.Exec("DELETE FROM menu_items")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM daily_stats")

	hashed, err := utils.HashPassword("admin123")
	assert.NoError(t, err)
	db.Create(&models.User{Username: "admin", HashedPassword: hashed})
	return db
}

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authCtrl := controllers.NewAuthController(db)
	itemCtrl := controllers.NewItemController(db)
	statsCtrl := controllers.NewStatsController(db)

	r.POST("/token", authCtrl.Login)

	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware(db))
	auth.POST("/items", itemCtrl.CreateItem)
	auth.GET("/stats", statsCtrl.GetStats)
	return r
}

func login(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesWorkingToken(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAuth(t)
	r := setupAuthRouter(db)

	w := login(t, r, "admin", "admin123")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)

	// The token resolves back to the same user on a protected route.
	req, _ := http.NewRequest("GET", "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestLoginFailureDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAuth(t)
	r := setupAuthRouter(db)

	unknownUser := login(t, r, "nobody", "admin123")
	wrongPassword := login(t, r, "admin", "wrong")

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, "Bearer", unknownUser.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Bearer", wrongPassword.Header().Get("WWW-Authenticate"))
	// Byte-identical bodies: no probing usernames through error text.
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAuth(t)
	r := setupAuthRouter(db)

	category := models.Category{Name: "Seafood", Slug: "seafood"}
	db.Create(&category)

	w := postJSON(t, r, "/api/items", gin.H{"category_id": category.ID, "name": "Salmon", "price": 10})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	// State unchanged: nothing was created.
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestProtectedRouteWithGarbageToken(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAuth(t)
	r := setupAuthRouter(db)

	req, _ := http.NewRequest("GET", "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteWithDeletedUser(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAuth(t)
	r := setupAuthRouter(db)

	token, err := utils.GenerateToken("ghost")
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
