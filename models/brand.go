package models

import (
	"strings"
	"time"
)

// Brand guarda o perfil de marca de um usuario (um por usuario, via upsert).
// BrandColors is persisted and served as a comma-joined string, matching what
// clients already store.
type Brand struct {
	ID             int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID         int64      `gorm:"not null" json:"user_id"`
	BusinessName   string     `gorm:"not null" json:"business_name" form:"business_name"`
	Description    string     `json:"description" form:"description"`
	Industry       string     `json:"industry" form:"industry"`
	Tone           string     `json:"tone" form:"tone"`
	TargetAudience string     `gorm:"column:target_audience" json:"target_audience" form:"target_audience"`
	BrandColors    string     `gorm:"column:brand_colors" json:"brand_colors"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// JoinColors flattens the color list for storage.
func JoinColors(colors []string) string {
	return strings.Join(colors, ",")
}
