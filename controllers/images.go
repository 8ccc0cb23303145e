package controllers

import (
	"net/http"

	"github.com/blackboy404-RGB/smm/tools"

	"github.com/gin-gonic/gin"
)

type ImageGenerateRequest struct {
	Prompt string `json:"prompt" form:"prompt"`
	Style  string `json:"style" form:"style"`
}

// POST /api/images/generate
func GenerateImages(c *gin.Context) {
	var req ImageGenerateRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"images": tools.PlaceholderImages(req.Prompt, req.Style)})
}
