package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rentaro/lease-engine/internal/transport/api/tokens"
)

const currentUserIDKey = "currentUserID"

// Authenticate извлекает Bearer-токен и кладет id пользователя в контекст
// запроса. Без валидного токена запрос обрывается с 401.
func Authenticate(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.ValidateUserJWT(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(currentUserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID id аутентифицированного пользователя из контекста запроса.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(currentUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
