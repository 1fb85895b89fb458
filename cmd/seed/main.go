package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"kosku/internal/config"
	"kosku/internal/database"
	"kosku/internal/domain"
	"kosku/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first so FKs never complain)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reminder_logs")
	db.Exec("DELETE FROM booking_documents")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM cost_records")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM auth_tokens")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	rooms := repository.NewRoomRepository(db)
	costs := repository.NewCostRepository(db)

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@kosku.id",
		PasswordHash: string(adminHash),
		Name:         "Pengelola Kos",
		Phone:        "+628111111111",
		Role:         domain.RoleAdmin,
		IsVerified:   true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("admin seed failed:", err)
	}
	log.Println("Admin created: admin@kosku.id / admin123")

	tenantNames := []string{"Budi Santoso", "Sari Lestari", "Tono Wijaya"}
	for i, name := range tenantNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("tenant123"), bcrypt.DefaultCost)
		tenant := &domain.User{
			Email:        fmt.Sprintf("tenant%d@example.com", i+1),
			PasswordHash: string(hash),
			Name:         name,
			Phone:        fmt.Sprintf("+62812345678%d", i),
			Role:         domain.RoleCustomer,
			IsVerified:   true,
		}
		if err := users.Create(ctx, tenant); err != nil {
			log.Fatal("tenant seed failed:", err)
		}
	}

	log.Println("Creating rooms...")
	types := []domain.RoomType{domain.RoomStandard, domain.RoomStandard, domain.RoomDeluxe, domain.RoomPremium}
	monthly := []int64{1200000, 1200000, 1800000, 2500000}
	for i, roomType := range types {
		r := &domain.Room{
			Name:   fmt.Sprintf("A%d", i+1),
			Type:   roomType,
			Status: domain.RoomAvailable,
			Pricing: domain.RoomPricing{
				Weekly:   decimal.NewFromInt(monthly[i] / 3),
				Monthly:  decimal.NewFromInt(monthly[i]),
				Semester: decimal.NewFromInt(monthly[i] * 5),
				Yearly:   decimal.NewFromInt(monthly[i] * 10),
			},
			Facilities:   []string{"Kasur", "Lemari", "WiFi"},
			MaxOccupancy: 1,
			Size:         "3x4",
		}
		if err := rooms.Create(ctx, r); err != nil {
			log.Fatal("room seed failed:", err)
		}
	}

	log.Println("Creating cost records...")
	seedCosts := []domain.CostRecord{
		{Kind: domain.CostFixed, Status: domain.CostPaid, Caption: "Listrik", Harga: decimal.NewFromInt(750000), Tanggal: "2026-08-05"},
		{Kind: domain.CostFixed, Status: domain.CostPending, Caption: "Air PDAM", Harga: decimal.NewFromInt(250000), Tanggal: "2026-08-10"},
		{Kind: domain.CostVariable, Status: domain.CostPaid, Caption: "Perbaikan keran", Harga: decimal.NewFromInt(150000), Tanggal: "2026-08-12"},
		{Kind: domain.CostSupport, Status: domain.CostPaid, Caption: "Gaji penjaga", Harga: decimal.NewFromInt(1000000), Tanggal: "2026-08-01"},
	}
	for i := range seedCosts {
		if err := costs.Create(ctx, &seedCosts[i]); err != nil {
			log.Fatal("cost seed failed:", err)
		}
	}

	log.Println("Seed completed")
}
