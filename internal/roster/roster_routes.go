package roster

import (
	"github.com/nextstarsoccer/nss-backend/config"

	"github.com/gin-gonic/gin"
)

func RegisterRosterRoutes(router *gin.RouterGroup, appConfig *config.Config) {
	sheets := NewSheetsClient(appConfig.Sheets.SpreadsheetID, appConfig.Sheets.APIKey, appConfig.Sheets.Range)
	classifier := NewClassifier(DefaultClassifierConfig())
	controller := NewRosterController(sheets, classifier, appConfig)

	alumni := router.Group("/alumni")
	{
		alumni.GET("", controller.GetAlumni)
		alumni.GET("/filters", controller.GetFilterTree)
	}
}
