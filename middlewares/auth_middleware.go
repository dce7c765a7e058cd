package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
	"gorm.io/gorm"
)

// ContextUserKey is where the resolved admin user lives on the gin context.
const ContextUserKey = "currentUser"

// AuthMiddleware resolves the bearer token on every protected route. The
// specific failure (missing header, expired token, bad signature, deleted
// user) is logged, but the response is always the same generic 401 with a
// Bearer challenge so callers can't probe which case they hit.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "missing or malformed Authorization header")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		username, err := utils.ParseToken(tokenString)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			abortUnauthorized(c, utils.ErrUserNotFound.Error())
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, cause string) {
	if utils.ErrorLogger != nil {
		utils.ErrorLogger.Printf("auth rejected for %s %s: %s", c.Request.Method, c.Request.URL.Path, cause)
	}
	c.Header("WWW-Authenticate", "Bearer")
	utils.RespondError(c, http.StatusUnauthorized, utils.ErrNotAuthenticated)
	c.Abort()
}

// CurrentUser pulls the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
