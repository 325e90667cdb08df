package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"wheelhouse-backend/internal/api/rest"
	"wheelhouse-backend/internal/config"
	"wheelhouse-backend/internal/logger"
	"wheelhouse-backend/internal/repository/postgres"
	"wheelhouse-backend/internal/security"
	"wheelhouse-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Wheelhouse Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	notifier := service.NewNotifier(store.NotificationRepository)
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	router := rest.NewRouter(rest.RouterDeps{
		Tokens:        tokenManager,
		AuthSvc:       service.NewAuthService(store.UserRepository, tokenManager),
		BrandSvc:      service.NewBrandService(store.BrandRepository),
		VehicleSvc:    service.NewVehicleService(store.VehicleRepository, store.BrandRepository),
		CustomerSvc:   service.NewCustomerService(store.CustomerRepository),
		RentalSvc:     service.NewRentalService(store.RentalRepository, store.VehicleRepository, store.InstallmentRepository, store.UserRepository, notifier, emailSvc),
		ReviewSvc:     service.NewReviewService(store.ReviewRepository, store.VehicleRepository),
		NoteSvc:       service.NewNotificationService(store.NotificationRepository),
		UpholsterySvc: service.NewUpholsteryService(store.UpholsteryRepository, notifier),
		SupportSvc:    service.NewSupportService(store.SupportRepository, notifier),
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
