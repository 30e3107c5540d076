package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive/internal/core/ports"
	"taskhive/pkg/apierrors"
)

// TokenHeader is the custom header the web client sends the bearer token
// in. The standard Authorization scheme is not used.
const TokenHeader = "x-auth-token"

const userIDKey = "userID"

// AuthMiddleware is the single authorization checkpoint: it verifies the
// bearer token and injects the subject id for downstream handlers. Every
// route except registration, login and health runs behind it.
func AuthMiddleware(tokens ports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id set by AuthMiddleware.
func GetUserID(c *gin.Context) string {
	if value, exists := c.Get(userIDKey); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}
