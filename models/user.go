package models

import (
	"time"
)

/************************************************
/**** MARK: SUBSCRIPTION PLANS ****/
/************************************************/
const SUBSCRIPTION_FREE = "free"
const SUBSCRIPTION_PRO = "pro"
const SUBSCRIPTION_PREMIUM = "premium"

// Monthly plan prices in KES. Informational only: the mock STK push never
// validates the submitted amount against these.
const PLAN_PRICE_FREE = 0
const PLAN_PRICE_PRO = 2500
const PLAN_PRICE_PREMIUM = 5000

// User representa uma conta no sistema.
type User struct {
	ID                 int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name               string     `gorm:"not null" json:"name" form:"name"`
	Email              string     `gorm:"not null;unique" json:"email" form:"email"`
	Phone              string     `gorm:"not null" json:"phone" form:"phone"`
	Password           string     `gorm:"not null" json:"password,omitempty" form:"password"`
	Subscription       string     `gorm:"default:'free'" json:"subscription" form:"subscription"`
	SubscriptionExpiry *time.Time `gorm:"column:subscription_expiry" json:"subscription_expiry"`
	MpesaPhone         string     `gorm:"column:mpesa_phone;default:''" json:"mpesa_phone"`
	CreatedAt          *time.Time `json:"created_at"`
}

func (user User) MissingFields() string {
	if user.Name == "" {
		return "name"
	} else if user.Email == "" {
		return "email"
	} else if user.Phone == "" {
		return "phone"
	} else if user.Password == "" {
		return "password"
	}
	return ""
}
