package middleware

import (
	"strings"

	"creatorcrewz/internal/auth"
	"creatorcrewz/internal/logger"

	"github.com/gin-gonic/gin"
)

// SessionCookieName holds the access token issued after sign-up.
const SessionCookieName = "session"

const (
	userIDKey = "userID"
	roleKey   = "role"
	emailKey  = "email"
)

type TokenParser interface {
	ParseToken(tokenStr string) (*auth.Claims, error)
}

// SessionMiddleware reads the access token from the Authorization header or the
// session cookie and, when it is valid, stores its claims in the gin context.
// Requests without a valid token pass through anonymously.
func SessionMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c.GetHeader("Authorization"))
		if tokenStr == "" {
			tokenStr, _ = c.Cookie(SessionCookieName)
		}
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "Ignoring invalid session token", "error", err.Error())
			c.Next()
			return
		}

		c.Set(userIDKey, claims.Sub)
		c.Set(roleKey, claims.Role)
		c.Set(emailKey, claims.Email)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.Sub))
		c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// GetUserID returns the signed-in user id, or "" for anonymous requests.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func GetUserRole(c *gin.Context) string {
	return c.GetString(roleKey)
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(emailKey)
}
