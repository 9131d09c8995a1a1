package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/factupro/invoice-api/internal/domain"
)

// ClaimsKey is the gin context key the verified identity is stored under.
const ClaimsKey = "claims"

// authClaims are the token claims the gateway cares about. The username key
// follows the Cognito user pool convention the frontend tokens use.
type authClaims struct {
	Username string `json:"cognito:username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Auth validates a Bearer token and attaches the verified identity to the
// request context. A missing or invalid token is not rejected here: the
// dispatcher refuses unauthenticated events itself, so the request continues
// without claims.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		c.Set(ClaimsKey, &domain.Claims{
			Username: claims.Username,
			Email:    claims.Email,
		})
		c.Next()
	}
}
