package content

import (
	"github.com/nextstarsoccer/nss-backend/config"

	"github.com/gin-gonic/gin"
)

func RegisterContentRoutes(router *gin.RouterGroup, appConfig *config.Config) {
	service := NewService(appConfig.App.ContentDir)
	controller := NewContentController(service)

	pages := router.Group("/content")
	{
		pages.GET("", controller.ListPages)
		pages.GET("/:page", controller.GetPage)
	}
}
