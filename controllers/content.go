package controllers

import (
	"net/http"

	dbpkg "github.com/blackboy404-RGB/smm/db"
	"github.com/blackboy404-RGB/smm/models"
	"github.com/blackboy404-RGB/smm/tools"

	"github.com/gin-gonic/gin"
)

type ContentGenerateRequest struct {
	Platform    string `json:"platform" form:"platform"`
	ContentType string `json:"content_type" form:"content_type"`
	Tone        string `json:"tone" form:"tone"`
	Topic       string `json:"topic" form:"topic"`
}

type ContentRequest struct {
	Platform      string `json:"platform" form:"platform"`
	ContentType   string `json:"content_type" form:"content_type"`
	Body          string `json:"body" form:"body"`
	ImageURL      string `json:"image_url" form:"image_url"`
	ScheduledDate string `json:"scheduled_date" form:"scheduled_date"`
	Status        string `json:"status" form:"status"`
}

// POST /api/content/generate
// Pure lookup into the template table; generating does not persist anything.
func GenerateContent(c *gin.Context) {
	var req ContentGenerateRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	variations := tools.GenerateVariations(req.Platform, req.ContentType, req.Tone, req.Topic)
	RespondSuccess(c, gin.H{"content": variations})
}

// GET /api/content
func GetContents(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	contents := []models.Content{}
	if err := db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&contents).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, contents)
}

// POST /api/content
func CreateContent(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ContentRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	item := models.Content{
		UserID:        user.ID,
		Platform:      req.Platform,
		ContentType:   req.ContentType,
		Body:          req.Body,
		ImageURL:      req.ImageURL,
		ScheduledDate: req.ScheduledDate,
		Status:        req.Status,
	}
	if item.Status == "" {
		item.Status = models.CONTENT_STATUS_DRAFT
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := db.Create(&item).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"id": item.ID, "success": true})
}
