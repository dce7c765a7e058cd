package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// TrackVisit bumps today's visit counter. The insert-or-increment happens in
// one atomic upsert keyed on the date primary key, so concurrent visits can
// neither lose an increment nor create a second row for the same day.
func (sc *StatsController) TrackVisit(c *gin.Context) {
	today := time.Now().Format(models.DateLayout)

	stat := models.DailyStat{Date: today, TotalVisits: 1}
	err := sc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_visits": gorm.Expr("total_visits + 1"),
		}),
	}).Create(&stat).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// TrackOrder records a completed order against today's row: order count +1,
// revenue accumulated. Same atomic upsert as TrackVisit.
func (sc *StatsController) TrackOrder(c *gin.Context) {
	var body struct {
		Revenue float64 `json:"revenue" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	today := time.Now().Format(models.DateLayout)

	stat := models.DailyStat{Date: today, TotalOrders: 1, TotalRevenue: body.Revenue}
	err := sc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_orders":  gorm.Expr("total_orders + 1"),
			"total_revenue": gorm.Expr("total_revenue + ?", body.Revenue),
		}),
	}).Create(&stat).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetStats returns the dashboard summary: entity totals plus every daily row
// oldest-first. The daily table is bounded by days in operation, so no
// pagination.
func (sc *StatsController) GetStats(c *gin.Context) {
	var totalItems int64
	if err := sc.DB.Model(&models.MenuItem{}).Count(&totalItems).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var totalCategories int64
	if err := sc.DB.Model(&models.Category{}).Count(&totalCategories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var dailyStats []models.DailyStat
	if err := sc.DB.Order("date asc").Find(&dailyStats).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if dailyStats == nil {
		dailyStats = []models.DailyStat{}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_items":      totalItems,
		"total_categories": totalCategories,
		"daily_stats":      dailyStats,
	})
}
