package models

import (
	"time"
)

/************************************************
/**** MARK: CONTENT STATUS ****/
/************************************************/
const CONTENT_STATUS_DRAFT = "draft"
const CONTENT_STATUS_SCHEDULED = "scheduled"
const CONTENT_STATUS_PUBLISHED = "published"

// Content é uma peça de conteúdo gerada ou escrita pelo usuario.
// Rows are only ever inserted and listed newest-first; there is no update or
// delete in the current scope.
type Content struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID        int64      `gorm:"not null" json:"user_id"`
	Platform      string     `json:"platform" form:"platform"`
	ContentType   string     `gorm:"column:content_type" json:"content_type" form:"content_type"`
	Body          string     `json:"body" form:"body"`
	ImageURL      string     `gorm:"column:image_url" json:"image_url" form:"image_url"`
	ScheduledDate string     `gorm:"column:scheduled_date" json:"scheduled_date" form:"scheduled_date"`
	Status        string     `gorm:"default:'draft'" json:"status" form:"status"`
	CreatedAt     *time.Time `json:"created_at"`
}
