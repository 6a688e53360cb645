package contact

import (
	"github.com/nextstarsoccer/nss-backend/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterContactRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewContactRepository(db)
	mailer := NewResendMailer(appConfig.Mail.ResendAPIKey, appConfig.Mail.FromAddress, appConfig.Mail.ContactInbox)
	controller := NewContactController(repo, mailer)

	router.POST("/contact", controller.SubmitMessage)
}
