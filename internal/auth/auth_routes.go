package auth

import (
	"github.com/nextstarsoccer/nss-backend/config"
	mw "github.com/nextstarsoccer/nss-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	router.POST("/register", controller.Register)
	router.POST("/login", controller.Login)
	router.POST("/refresh-token", controller.RefreshToken)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authenticated.POST("/logout", controller.Logout)
		authenticated.GET("/me", controller.GetProfile)
		authenticated.PUT("/me", controller.UpdateProfile)
		authenticated.POST("/change-password", controller.ChangePassword)
	}
}
