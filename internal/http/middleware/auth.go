package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userUUIDKey = "auth_user_uuid"
	userRoleKey = "auth_user_role"
)

// Protected validates the Bearer token and stores the caller's uuid and role
// in the request context. The booking impersonation check compares the
// payload's bookedBy against this uuid.
func Protected(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "AuthorizationError: missing bearer token"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "AuthorizationError: invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "AuthorizationError: invalid claims"})
			return
		}
		uid, _ := claims["uid"].(string)
		role, _ := claims["role"].(string)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "AuthorizationError: invalid claims"})
			return
		}

		c.Set(userUUIDKey, uid)
		c.Set(userRoleKey, role)
		c.Next()
	}
}

// CurrentUser returns the authenticated caller's uuid, if any.
func CurrentUser(c *gin.Context) string {
	if v, ok := c.Get(userUUIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentRole returns the authenticated caller's role, if any.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(userRoleKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SetTestIdentity seeds context identity for handler tests.
func SetTestIdentity(c *gin.Context, uuid, role string) {
	c.Set(userUUIDKey, uuid)
	c.Set(userRoleKey, role)
}
