package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mathangi54/Travelling-System/pkg/jwt"
)

// userIDKey is the gin context key holding the authenticated user's id
const userIDKey = "auth_user_id"

// RequireAuth rejects requests without a valid bearer token. The three
// failure modes get distinct messages so clients can react properly.
func RequireAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Token is missing",
			})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			message := "Token is invalid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": message,
			})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid token is
// present and continues anonymously otherwise. It never aborts; a stale
// or malformed token just means no identity.
func OptionalAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := jwtService.ValidateToken(token); err == nil {
				c.Set(userIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, if any
func UserID(c *gin.Context) (int, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int)
	return id, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
