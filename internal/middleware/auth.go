package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/auth"
	"mediexplain/internal/models"
	"mediexplain/internal/storage"
)

// UserKey is the gin context key holding the authenticated models.User.
const UserKey = "user"

// tokenFrom reads the bearer header, or the token query parameter for
// clients that cannot set headers (websocket, audio element).
func tokenFrom(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", false
		}
		return strings.TrimPrefix(authHeader, "Bearer "), true
	}
	if token := c.Query("token"); token != "" {
		return token, true
	}
	return "", false
}

// AuthMiddleware accepts a token only while the session slot still holds
// the same user, so logging out invalidates every issued token.
func AuthMiddleware(sessions *storage.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := tokenFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		current, ok, err := sessions.Load(c.Request.Context())
		if err != nil {
			log.Printf("AuthMiddleware(): failed to load session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		if !ok || current.Email != claims.Email {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended"})
			return
		}

		c.Set(UserKey, current)
		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
