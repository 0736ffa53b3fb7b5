package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"concert-log-system/handlers"
	"concert-log-system/middleware"
	"concert-log-system/models"
	"concert-log-system/services"
	"concert-log-system/utils"
	"concert-log-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // 20MB, images only
	})

	// 🔐 GLOBAL: only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-User-ID, X-User-Roles, X-Service-Token",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	// TranslateError lets the award path match duplicate-key conflicts by kind
	// (gorm.ErrDuplicatedKey) instead of parsing driver messages.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.ConcertUser{},
		&models.Artist{},
		&models.Venue{},
		&models.Event{},
		&models.EventLog{},
		&models.Badge{},
		&models.UserBadge{},
		&models.BadgePointsEntry{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	badgeService := services.NewBadgeService(db)
	eventLogService := services.NewEventLogService(db, badgeService)
	artistService := services.NewArtistService(db)
	venueService := services.NewVenueService(db)
	eventService := services.NewEventService(db)

	// Converge the durable badge catalog up front; every check re-runs this
	// idempotently anyway.
	if err := badgeService.EnsureCatalog(); err != nil {
		log.Fatal("failed to sync badge catalog:", err)
	}

	profileServiceURL := os.Getenv("PROFILE_SERVICE_URL")
	if profileServiceURL == "" {
		log.Fatal("PROFILE_SERVICE_URL environment variable not set")
	}
	serviceToken := os.Getenv("CONCERT_SERVICE_TOKEN")
	if serviceToken == "" {
		log.Fatal("CONCERT_SERVICE_TOKEN environment variable not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	syncWorker := workers.NewProfileSyncWorker(db, profileServiceURL, "/api/v1/public/profiles", serviceToken)
	syncWorker.Start(ctx)

	badgeService.StartLeaderboardScheduler(10 * time.Minute)

	handlers.SetupBadgeRoutes(app, badgeService)
	handlers.SetupShowRoutes(app, eventLogService)
	handlers.SetupDirectoryRoutes(app, artistService, venueService, eventService)

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Println("✅ Profile Sync Worker running")
	log.Println("✅ Leaderboard refresh scheduled (every 10m)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
