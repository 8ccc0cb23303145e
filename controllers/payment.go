package controllers

import (
	"net/http"
	"time"

	dbpkg "github.com/blackboy404-RGB/smm/db"
	"github.com/blackboy404-RGB/smm/models"
	"github.com/blackboy404-RGB/smm/tools"

	"github.com/gin-gonic/gin"
)

const checkoutPrefix = "MPS-"

// Activations run for 30 days from the moment of the call.
const subscriptionValidity = 30 * 24 * time.Hour

type PaymentRequest struct {
	Phone  string `json:"phone" form:"phone"`
	Amount int    `json:"amount" form:"amount"`
	Plan   string `json:"plan" form:"plan"`
}

// CallbackRequest mirrors the result shape an M-Pesa gateway would post
// back. Only ResultCode is looked at.
type CallbackRequest struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// POST /api/payments/stk-push
// Mock STK push: records the payer's phone against the account and
// fabricates a checkout reference. Nothing is sent to a payment network and
// the amount is never checked against the plan price.
func InitiateStkPush(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Phone == "" {
		RespondError(c, "phone is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("mpesa_phone", req.Phone).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{
		"success":             true,
		"message":             "STK push initiated. Please check your phone.",
		"checkout_request_id": checkoutPrefix + tools.RandomNumbers(6),
	})
}

// POST /api/payments/callback
// Result code zero means the payment went through. The callback carries no
// linkage back to the checkout reference that triggered it.
func PaymentCallback(c *gin.Context) {
	var req CallbackRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ResultCode != 0 {
		RespondSuccess(c, gin.H{"success": false, "message": "Payment failed"})
		return
	}
	RespondSuccess(c, gin.H{"success": true})
}

// GET /api/subscription
func GetSubscription(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	plan := user.Subscription
	if plan == "" {
		plan = models.SUBSCRIPTION_FREE
	}
	RespondSuccess(c, gin.H{"plan": plan, "expiry": user.SubscriptionExpiry})
}

// POST /api/subscription/activate?plan=pro
// Sets the plan and a fresh 30-day expiry unconditionally. Activation does
// not check that an STK push or callback ever succeeded; that matches the
// flow this service replaces, where the client calls activate after the
// mock payment.
func ActivateSubscription(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	plan := c.Query("plan")
	if plan == "" {
		RespondError(c, "plan is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	expiry := time.Now().UTC().Add(subscriptionValidity)
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"subscription":        plan,
			"subscription_expiry": expiry,
		}).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"success": true, "plan": plan, "expiry": expiry})
}
