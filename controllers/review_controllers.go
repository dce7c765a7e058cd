package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// GetReviews lists stored reviews newest-first for the public site.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := rc.DB.Order("time desc").Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	c.JSON(http.StatusOK, reviews)
}

// SyncReviews imports a batch of reviews fetched from Google. Rows whose
// google_id is already stored are skipped, so re-running a sync is harmless.
func (rc *ReviewController) SyncReviews(c *gin.Context) {
	var body struct {
		Reviews []models.Review `json:"reviews" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	imported := 0
	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		for i := range body.Reviews {
			review := body.Reviews[i]
			review.ID = 0
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "google_id"}},
				DoNothing: true,
			}).Create(&review)
			if result.Error != nil {
				return result.Error
			}
			imported += int(result.RowsAffected)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("review sync: %d of %d imported", imported, len(body.Reviews))

	c.JSON(http.StatusOK, gin.H{"imported": imported})
}
