package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/keystone1031/exchange-tools/internal/api"
	"github.com/keystone1031/exchange-tools/internal/config"
	"github.com/keystone1031/exchange-tools/internal/database"
	"github.com/keystone1031/exchange-tools/internal/repository"
	"github.com/keystone1031/exchange-tools/internal/seed"
	"github.com/keystone1031/exchange-tools/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply migrations and load reference content
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	referenceRepo := repository.NewReferenceRepository(db)
	seeder := seed.NewSeeder(referenceRepo)
	if err := seeder.Run(); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	// Create services
	systemService := service.NewSystemService(db)
	calculatorService := service.NewCalculatorService(cfg.Calculator, time.Now)
	referenceService := service.NewReferenceService(referenceRepo)

	// Schedule periodic reference-data refresh
	scheduler := cron.New()
	if cfg.Refresh.Schedule != "" {
		_, err := scheduler.AddFunc(cfg.Refresh.Schedule, func() {
			if err := seeder.Run(); err != nil {
				log.Printf("Scheduled reference refresh failed: %v", err)
				return
			}
			log.Println("Reference data refreshed")
		})
		if err != nil {
			log.Fatalf("Invalid refresh schedule %q: %v", cfg.Refresh.Schedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create router
	router := api.NewRouter(systemService, calculatorService, referenceService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
