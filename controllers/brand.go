package controllers

import (
	"net/http"

	dbpkg "github.com/blackboy404-RGB/smm/db"
	"github.com/blackboy404-RGB/smm/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type BrandRequest struct {
	BusinessName   string   `json:"business_name" form:"business_name"`
	Description    string   `json:"description" form:"description"`
	Industry       string   `json:"industry" form:"industry"`
	Tone           string   `json:"tone" form:"tone"`
	TargetAudience string   `json:"target_audience" form:"target_audience"`
	BrandColors    []string `json:"brand_colors" form:"brand_colors"`
}

// POST /api/brand
// Whole-row upsert keyed on user_id: a second submission overwrites the
// first, there is no partial update.
func SaveBrand(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.BusinessName == "" {
		RespondError(c, "business_name is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var brand models.Brand
	err := db.Where("user_id = ?", user.ID).First(&brand).Error
	if err != nil && !gorm.IsRecordNotFoundError(err) {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	brand.UserID = user.ID
	brand.BusinessName = req.BusinessName
	brand.Description = req.Description
	brand.Industry = req.Industry
	brand.Tone = req.Tone
	brand.TargetAudience = req.TargetAudience
	brand.BrandColors = models.JoinColors(req.BrandColors)

	if brand.ID == 0 {
		err = db.Create(&brand).Error
	} else {
		err = db.Save(&brand).Error
	}
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"success": true, "message": "Brand profile saved"})
}

// GET /api/brand
// Responds with the profile row, or JSON null when the user has none yet.
func GetBrand(c *gin.Context) {
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

	var brand models.Brand
	if err := db.Where("user_id = ?", user.ID).First(&brand).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			RespondSuccess(c, nil)
			return
		}
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, brand)
}
