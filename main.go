package main

import (
	"log"

	"github.com/nextstarsoccer/nss-backend/config"
	_ "github.com/nextstarsoccer/nss-backend/docs"
	"github.com/nextstarsoccer/nss-backend/internal/billing"
	"github.com/nextstarsoccer/nss-backend/internal/contact"
	"github.com/nextstarsoccer/nss-backend/internal/events"
	"github.com/nextstarsoccer/nss-backend/internal/user"
	"github.com/nextstarsoccer/nss-backend/routes"
)

// @title Next Star Soccer API
// @version 1.0
// @description Backend for the Next Star Soccer training portal: alumni roster, training calendar, event sign-ups, billing and contact.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&events.Event{}, &events.Signup{},
		&billing.Bill{}, &billing.BillItem{}, &billing.Payment{},
		&contact.Message{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
