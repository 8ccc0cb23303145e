package router

import (
	"log"

	"github.com/blackboy404-RGB/smm/config"
	"github.com/blackboy404-RGB/smm/controllers"
	"github.com/blackboy404-RGB/smm/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public auth/callback/health
// endpoints plus the authenticated app surface. Paths are frozen; existing
// clients depend on them.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/auth/register", Logger(), controllers.Register)
	api.POST("/auth/login", Logger(), controllers.Login)
	api.POST("/payments/callback", Logger(), controllers.PaymentCallback)
	api.GET("/health", Logger(), controllers.Health)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/auth/me", Logger(), controllers.Me)

	// Brand profile
	auth.POST("/brand", Logger(), controllers.SaveBrand)
	auth.GET("/brand", Logger(), controllers.GetBrand)

	// Content
	auth.POST("/content/generate", Logger(), controllers.GenerateContent)
	auth.GET("/content", Logger(), controllers.GetContents)
	auth.POST("/content", Logger(), controllers.CreateContent)

	// Images
	auth.POST("/images/generate", Logger(), controllers.GenerateImages)

	// Payments / subscription
	auth.POST("/payments/stk-push", Logger(), controllers.InitiateStkPush)
	auth.GET("/subscription", Logger(), controllers.GetSubscription)
	auth.POST("/subscription/activate", Logger(), controllers.ActivateSubscription)

	log.Printf("Routes initialized")
}
