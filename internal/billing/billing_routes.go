package billing

import (
	"github.com/nextstarsoccer/nss-backend/config"
	mw "github.com/nextstarsoccer/nss-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterBillingRoutes mounts the billing endpoints. Everything here
// requires an authenticated user; bills are always scoped to the caller.
func RegisterBillingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewBillingRepository(db)
	controller := NewBillingController(repo)

	billing := router.Group("/billing")
	billing.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		billing.GET("/bills", controller.GetCurrentBills)
		billing.POST("/bills/:id/pay", controller.PayBill)
		billing.GET("/payments", controller.GetPaymentHistory)
		billing.GET("/summary", controller.GetSummary)
	}
}
