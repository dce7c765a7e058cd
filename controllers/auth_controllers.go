package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login handles POST /token with form-encoded credentials and returns a
// bearer token. Unknown username and wrong password answer identically so
// the response never reveals which one happened.
func (ac *AuthController) Login(c *gin.Context) {
	var form struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ?", form.Username).First(&user).Error; err != nil {
		ac.rejectLogin(c, form.Username)
		return
	}

	if !utils.CheckPasswordHash(form.Password, user.HashedPassword) {
		ac.rejectLogin(c, form.Username)
		return
	}

	token, err := utils.GenerateToken(user.Username)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("admin login: %s", user.Username)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (ac *AuthController) rejectLogin(c *gin.Context, username string) {
	utils.ErrorLogger.Printf("failed login attempt for username %q", username)
	c.Header("WWW-Authenticate", "Bearer")
	utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidCredentials)
}
