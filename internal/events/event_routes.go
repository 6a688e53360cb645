package events

import (
	"github.com/nextstarsoccer/nss-backend/config"
	mw "github.com/nextstarsoccer/nss-backend/internal/middleware"
	"github.com/nextstarsoccer/nss-backend/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterEventRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewEventRepository(db)
	controller := NewEventController(repo, appConfig)

	authenticated := router.Group("/events")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authenticated.GET("", controller.ListEvents)
		authenticated.POST("/:event_id/signup", controller.SignUp)
		authenticated.DELETE("/:event_id/signup", controller.CancelSignup)

		staff := authenticated.Group("")
		staff.Use(mw.RequireRole(user.RoleCoach, user.RoleAdmin))
		{
			staff.POST("", controller.CreateEvent)
		}
	}
}
