package controllers

import (
	"net/http"
	"strings"

	dbpkg "github.com/blackboy404-RGB/smm/db"
	"github.com/blackboy404-RGB/smm/models"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"

// AuthRequired validates the bearer token and loads the account fresh from
// the database on every request. No session state survives between requests.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			RespondError(c, "Authorization header missing", http.StatusUnauthorized)
			c.Abort()
			return
		}

		email, err := parseToken(strings.TrimSpace(header[len("Bearer "):]))
		if err != nil {
			RespondError(c, "Invalid token", http.StatusUnauthorized)
			c.Abort()
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db not configured in context", http.StatusInternalServerError)
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			RespondError(c, "User not found", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// GetUserLogged returns the account loaded by AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
