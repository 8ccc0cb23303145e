package controllers

import (
	"net/http"

	dbpkg "github.com/blackboy404-RGB/smm/db"
	"github.com/blackboy404-RGB/smm/models"
	"github.com/blackboy404-RGB/smm/tools"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if missing := user.MissingFields(); missing != "" {
		RespondError(c, "Missing field "+missing, http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(user.Email) {
		RespondError(c, "Invalid email", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		RespondError(c, "Email already registered", http.StatusBadRequest)
		return
	}

	user.Password = tools.HashPassword(req.Password)
	user.Subscription = models.SUBSCRIPTION_FREE

	if err := db.Create(&user).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	signed, err := issueToken(user.Email)
	if err != nil {
		RespondError(c, "Could not issue token", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, TokenResponse{AccessToken: signed, TokenType: "bearer"})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	// Same answer for unknown email and wrong password.
	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if !tools.VerifyPassword(req.Password, user.Password) {
		RespondError(c, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	signed, err := issueToken(user.Email)
	if err != nil {
		RespondError(c, "Could not issue token", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, TokenResponse{AccessToken: signed, TokenType: "bearer"})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	RespondSuccess(c, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"subscription": user.Subscription,
	})
}
