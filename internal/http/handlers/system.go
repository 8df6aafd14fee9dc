package handlers

import (
	"net/http"

	intconfig "busbackend/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"db": "not connected"})
		return
	}
	if err := intconfig.DB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"db": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"db": "ok"})
}
