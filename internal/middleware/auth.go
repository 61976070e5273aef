package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"contacts-be/internal/service"
)

// UserIDKey is the gin context key holding the authenticated user's id
const UserIDKey = "user_id"

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c)
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("rejected bearer token")
			unauthorized(c)
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
}
