package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	RespondSuccess(c, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
