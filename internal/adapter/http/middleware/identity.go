package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor_id"

// Identity extracts the acting user from a Bearer access token and stamps it
// into the request context. Identity resolution itself lives in the external
// session provider; this middleware only trusts its signed subject claim.
//
// Requests without a token pass through anonymously; decisions are stamped
// with an empty responsible party rather than rejected, because the upstream
// gateway already enforces authentication.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			c.Next()
			return
		}

		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok {
				c.Set(actorContextKey, sub)
			}
		}
		c.Next()
	}
}

// Actor returns the acting user id stamped by Identity, or "" when the
// request was anonymous.
func Actor(c *gin.Context) string {
	if v, ok := c.Get(actorContextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
