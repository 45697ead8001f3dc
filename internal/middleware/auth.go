package middleware

import (
	"net/http"
	"strings"

	"github.com/asbuyukgungor-bot/bus-erp/internal/apierror"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// UsernameKey is the gin context key holding the authenticated username.
	UsernameKey = "username"
)

// JWTClaims are the claims embedded in every access token.
type JWTClaims struct {
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route and resolves the
// subject to a known, non-disabled user. The WWW-Authenticate header follows
// the OAuth2 bearer scheme.
func JWTAuth(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			unauthorized(c)
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil || user.Disabled {
			unauthorized(c)
			return
		}

		c.Set(UsernameKey, user.Username)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Could not validate credentials"))
}

// GetUsername retrieves the authenticated username from the Gin context.
func GetUsername(c *gin.Context) string {
	return c.GetString(UsernameKey)
}
