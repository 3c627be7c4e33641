package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/social-mini/api-go/config"
	"github.com/social-mini/api-go/models"
	"github.com/social-mini/api-go/utils"
)

// AuthMiddleware resolves the bearer token to a user row and stores it in
// the request context. Every failure mode (missing header, bad format,
// failed verification, user no longer exists) gets the same response so
// clients cannot probe which part failed.
func AuthMiddleware(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		userID, err := utils.ParseAccessToken(cfg.JWTSecret, parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			unauthorized(c)
			return
		}

		c.Set(string(utils.UserContextKey), &user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
	c.Abort()
}
