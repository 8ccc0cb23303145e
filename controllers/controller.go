package controllers

import (
	"github.com/blackboy404-RGB/smm/config"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

// SetConfigurations hands the startup configuration to the handlers. Called
// once from main before any route is served.
func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}
