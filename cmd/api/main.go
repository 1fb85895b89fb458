package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kosku/internal/config"
	"kosku/internal/database"
	"kosku/internal/middleware"
	"kosku/internal/modules/auth"
	"kosku/internal/modules/booking"
	"kosku/internal/modules/cashflow"
	"kosku/internal/modules/cost"
	"kosku/internal/modules/reminder"
	"kosku/internal/modules/room"
	"kosku/internal/modules/upload"
	jwtsvc "kosku/internal/pkg/jwt"
	"kosku/internal/pkg/whatsapp"
	"kosku/internal/repository"
	ws "kosku/internal/websocket"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewAuthTokenRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	costRepo := repository.NewCostRepository(db)
	reminderLogRepo := repository.NewReminderLogRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	wa := whatsapp.NewClient(cfg.WhatsAppGatewayURL, cfg.WhatsAppAPIKey, cfg.WhatsAppTimeout)
	cookies := auth.NewCookieManager(cfg.CookieSecure, cfg.CookieSameSite, cfg.CookiePath, cfg.AccessTTL, cfg.RefreshTTL)

	hub := ws.NewHub()
	go hub.Run()

	authService := auth.NewService(userRepo, tokenRepo, j, wa, cfg.AppBaseURL, cfg.ResetTokenTTL)
	authHandler := auth.NewHandler(authService, cookies)

	roomService := room.NewService(roomRepo)
	roomHandler := room.NewHandler(roomService)

	bookingService := booking.NewService(bookingRepo, roomRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	costService := cost.NewService(costRepo)
	costHandler := cost.NewHandler(costService)

	cashflowService := cashflow.NewService(bookingRepo)
	cashflowHandler := cashflow.NewHandler(cashflowService)

	reminderService := reminder.NewService(bookingRepo, reminderLogRepo, wa)
	reminderHandler := reminder.NewHandler(reminderService)

	uploadService := upload.NewService(uploadRepo, cfg.UploadDir, cfg.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AppBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "x-api-key"},
		AllowCredentials: true,
	}))

	r.Static(cfg.StaticBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		roomHandler.RegisterPublicRoutes(v1)

		// session-gated
		protected := v1.Group("/")
		protected.Use(middleware.Session(authService, cookies))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterSessionRoutes(protected)
			uploadHandler.RegisterSessionRoutes(protected)
		}

		// admin only
		admin := v1.Group("/admin")
		admin.Use(middleware.Session(authService, cookies), middleware.AdminOnly())
		{
			roomHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
			costHandler.RegisterAdminRoutes(admin)
			cashflowHandler.RegisterAdminRoutes(admin)
		}

		// cron, gated by the shared key rather than a session
		cron := v1.Group("/cron")
		cron.Use(middleware.CronKeyAuth(cfg.CronAPIKey))
		{
			reminderHandler.RegisterCronRoutes(cron)
		}
	}

	r.GET("/ws/admin", func(c *gin.Context) {
		ws.ServeWs(hub, c, j)
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
