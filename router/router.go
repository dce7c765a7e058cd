package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paeez96/menu-api/controllers"
	"github.com/paeez96/menu-api/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(100, 1).RateLimit())

	authCtrl := controllers.NewAuthController(db)
	menuCtrl := controllers.NewMenuController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	itemCtrl := controllers.NewItemController(db)
	statsCtrl := controllers.NewStatsController(db)
	reviewCtrl := controllers.NewReviewController(db)

	// Liveness probe
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "online"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.POST("/token", middlewares.NewLoginRateLimiter(), authCtrl.Login)

	r.GET("/api/menu", menuCtrl.GetMenu)
	r.GET("/api/reviews", reviewCtrl.GetReviews)
	r.POST("/api/track-visit", statsCtrl.TrackVisit)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware(db))

	auth.POST("/categories", categoryCtrl.CreateCategory)
	auth.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

	auth.POST("/items", itemCtrl.CreateItem)
	auth.PUT("/items/:item_id", itemCtrl.UpdateItem)
	auth.DELETE("/items/:item_id", itemCtrl.DeleteItem)

	auth.GET("/stats", statsCtrl.GetStats)
	auth.POST("/track-order", statsCtrl.TrackOrder)

	auth.POST("/reviews/sync", reviewCtrl.SyncReviews)

	return r
}
