package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nextstarsoccer/nss-backend/config"
	"github.com/nextstarsoccer/nss-backend/internal/auth"
	"github.com/nextstarsoccer/nss-backend/internal/billing"
	"github.com/nextstarsoccer/nss-backend/internal/calendar"
	"github.com/nextstarsoccer/nss-backend/internal/contact"
	"github.com/nextstarsoccer/nss-backend/internal/content"
	"github.com/nextstarsoccer/nss-backend/internal/events"
	"github.com/nextstarsoccer/nss-backend/internal/middleware"
	"github.com/nextstarsoccer/nss-backend/internal/roster"
	"github.com/nextstarsoccer/nss-backend/pkg/metrics"
)

func SetupRoutes(appConfig *config.Config) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.MetricsMiddleware())

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})))

	db := config.DB

	// API routes
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	auth.RegisterAuthRoutes(authGroup, db, appConfig)

	roster.RegisterRosterRoutes(api, appConfig)
	calendar.RegisterCalendarRoutes(api, appConfig)
	events.RegisterEventRoutes(api, db, appConfig)
	billing.RegisterBillingRoutes(api, db, appConfig)
	contact.RegisterContactRoutes(api, db, appConfig)
	content.RegisterContentRoutes(api, appConfig)

	return r
}
