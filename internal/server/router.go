package server

import (
	"net/http"

	handler "lot-market/services/market/handler"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// ReadinessReporter reports whether startup (admin credential derivation) has
// completed.
type ReadinessReporter interface {
	Ready() bool
}

// Deps carries everything the router needs.
type Deps struct {
	Lots     *handler.LotHandler
	Auth     *handler.AuthHandler
	Messages *handler.MessageHandler
	Profile  *handler.ProfileHandler
	Admin    *handler.AdminHandler
	Cron     *handler.CronHandler
	Telegram *handler.TelegramHandler

	Readiness   ReadinessReporter
	Verifier    TokenVerifier
	AdminSecret string
	CronSecret  string
	Redis       *redis.Client
	UploadRoot  string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(RateLimitMiddleware(deps.Redis))

	router.GET("/health", func(c *gin.Context) {
		if deps.Readiness != nil && !deps.Readiness.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if deps.UploadRoot != "" {
		router.Static("/uploads", deps.UploadRoot)
	}

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.Auth.RegisterHandler)
		auth.POST("/login", deps.Auth.LoginHandler)
	}

	lots := api.Group("/lots")
	{
		lots.GET("", deps.Lots.ListLotsHandler)
		lots.POST("", deps.Lots.CreateLotHandler)
		lots.GET("/:lot_id", deps.Lots.GetLotHandler)
		lots.PUT("/:lot_id", deps.Lots.UpdateLotHandler)
		lots.DELETE("/:lot_id", deps.Lots.DeleteLotHandler)
		lots.POST("/:lot_id/bid", deps.Lots.PlaceBidHandler)
		lots.GET("/:lot_id/bids", deps.Lots.GetBidsHandler)
		lots.POST("/:lot_id/click", deps.Lots.RegisterClickHandler)
		lots.POST("/:lot_id/images", deps.Lots.UploadImageHandler)
	}

	messages := api.Group("/messages")
	{
		messages.GET("", deps.Messages.ListMessagesHandler)
		messages.POST("", deps.Messages.SendMessageHandler)
		messages.PUT("/:message_id/read", deps.Messages.MarkReadHandler)
	}

	profile := api.Group("/profile")
	{
		profile.GET("", deps.Profile.GetProfileHandler)
		profile.PUT("", deps.Profile.UpdateProfileHandler)
	}

	admin := api.Group("/admin", AdminAuthMiddleware(deps.AdminSecret, deps.Verifier))
	{
		admin.POST("/lots", deps.Admin.CreateLotHandler)
		admin.GET("/lots", deps.Admin.ListLotsHandler)
		admin.DELETE("/lots/:lot_id", deps.Admin.DeleteLotHandler)
	}

	cron := api.Group("/cron", SecretAuthMiddleware("X-Cron-Secret", deps.CronSecret))
	{
		cron.POST("/cleanup", deps.Cron.CleanupHandler)
	}

	if deps.Telegram != nil {
		api.POST("/telegram/webhook", deps.Telegram.WebhookHandler)
	}

	utils.Info("router configured", map[string]any{"admin_gate": deps.AdminSecret != ""})
	return router
}
