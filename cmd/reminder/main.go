package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"kosku/internal/config"
	"kosku/internal/database"
	"kosku/internal/modules/reminder"
	"kosku/internal/pkg/whatsapp"
	"kosku/internal/repository"
)

// Standalone reminder run for host cron. The HTTP trigger in the API binary
// does the same thing; this one skips the server entirely.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	svc := reminder.NewService(
		repository.NewBookingRepository(db),
		repository.NewReminderLogRepository(db),
		whatsapp.NewClient(cfg.WhatsAppGatewayURL, cfg.WhatsAppAPIKey, cfg.WhatsAppTimeout),
	)

	summary, err := svc.Run(context.Background())
	if err != nil {
		log.Fatalf("reminder run failed: %v", err)
	}

	log.Printf("reminder run completed: h1=%d h7=%d h15=%d h30=%d total=%d failed=%d",
		summary.H1, summary.H7, summary.H15, summary.H30, summary.Total, summary.Failed)
}
