package calendar

import (
	"github.com/nextstarsoccer/nss-backend/config"

	"github.com/gin-gonic/gin"
)

func RegisterCalendarRoutes(router *gin.RouterGroup, appConfig *config.Config) {
	client := NewProxyClient(appConfig.Calendar.ProxyURL, appConfig.Calendar.FunctionID)
	classifier := NewTypeClassifier(DefaultTypeRules())
	service := NewService(client, classifier)
	controller := NewCalendarController(service, classifier, appConfig)

	cal := router.Group("/calendar")
	{
		cal.GET("/today", controller.GetToday)
		cal.GET("/:year/:month", controller.GetMonth)
	}
}
