package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/social-mini/api-go/models"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, missing subject, expiry. Callers must not distinguish
// between them.
var ErrInvalidToken = errors.New("invalid access token")

type contextKey string

const UserContextKey contextKey = "current_user"

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// GenerateAccessToken issues an HS256 token whose signature covers both the
// subject and the absolute expiry.
func GenerateAccessToken(secret string, userID uint, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseAccessToken returns the user id embedded in the token, or
// ErrInvalidToken.
func ParseAccessToken(secret string, tokenStr string) (uint, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}

// CurrentUser returns the authenticated user set by the auth middleware,
// or nil on unprotected routes.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if user, ok := v.(*models.User); ok {
		return user
	}
	return nil
}
