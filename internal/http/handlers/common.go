package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret overrides the token signing key; called once at router setup.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondFormatError(c, "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondFormatError(c, "invalid payload: "+err.Error(), err)
		return false
	}
	return true
}

// IDParam parses a positive numeric path parameter.
func IDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondFormatError(c, "invalid "+name, err)
		return 0, false
	}
	return id, true
}
