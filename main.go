package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"suraksha/config"
	"suraksha/repository"
	"suraksha/routes"
	"suraksha/schema"
	"suraksha/service"
	"suraksha/worker"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize database connection (UTC for consistent timestamps)
	dsn := cfg.Database.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
		)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Database connection established")

	// Create missing tables, then verify the columns dispatch depends on
	schema.InitializeDatabase(db)
	schema.ValidateRequiredColumns(db, nil)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	stationRepo := repository.NewStationRepository(db)
	officerRepo := repository.NewOfficerRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	chatRepo := repository.NewChatRepository(db)
	tripRepo := repository.NewTripRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	locator := service.NewStationLocator(
		stationRepo,
		cfg.SOS.SearchRadiusKm,
		cfg.SOS.NearbyRadiusKm,
		time.Duration(cfg.SOS.StationCacheTTLSeconds)*time.Second,
	)
	notificationService := service.NewNotificationService(
		notificationRepo,
		nil, // Use default retry config
	)
	userService := service.NewUserService(userRepo, officerRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiryHours)
	alertService := service.NewAlertService(
		alertRepo,
		userRepo,
		officerRepo,
		stationRepo,
		locator,
		notificationService,
		cfg.SOS.OfficersPerAlert,
	)
	stationService := service.NewStationService(stationRepo, officerRepo, locator)
	complaintService := service.NewComplaintService(complaintRepo, officerRepo, stationRepo)
	chatService := service.NewChatService(chatRepo, officerRepo)
	tripService := service.NewTripService(tripRepo)

	// Background workers
	notificationInterval := 30 * time.Second
	if cfg.Notification.WorkerIntervalSeconds > 0 {
		notificationInterval = time.Duration(cfg.Notification.WorkerIntervalSeconds) * time.Second
	}
	notificationWorker := worker.NewNotificationWorker(notificationService, notificationInterval)
	notificationWorker.Start()

	dispatchInterval := 60 * time.Second
	if cfg.SOS.DispatchWorkerIntervalSeconds > 0 {
		dispatchInterval = time.Duration(cfg.SOS.DispatchWorkerIntervalSeconds) * time.Second
	}
	dispatchWorker := worker.NewDispatchWorker(alertService, dispatchInterval, 50)
	dispatchWorker.Start()

	// Setup routes
	router := routes.SetupRoutes(
		userService,
		alertService,
		stationService,
		complaintService,
		chatService,
		tripService,
		cfg.Auth.JWTSecret,
	)

	// Add CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")

			// Handle preflight requests
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	// Wrap router with CORS middleware
	handler := corsHandler(router)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
