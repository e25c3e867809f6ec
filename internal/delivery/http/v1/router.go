package v1

import (
	"net/http"
	"time"

	"go-autoresponder-backend/config"
	"go-autoresponder-backend/internal/delivery/http/middleware"
	"go-autoresponder-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AutoResponderUC domain.AutoResponderUsecase
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health Check (plain text, used by the hosting platform)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running!")
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Webhook route, optionally behind redelivery dedup
	webhook := r.Group("")
	if deps.Config.DedupWindowSeconds > 0 {
		window := time.Duration(deps.Config.DedupWindowSeconds) * time.Second
		webhook.Use(middleware.DedupMiddleware(middleware.DefaultDedupConfig(window)))
	}
	NewWebhookHandler(webhook, deps.AutoResponderUC)

	return r
}
