// Package main is the entry point for the keypair-vault REST service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "keypair_vault_service/internal/api/rest/v1"
	"keypair_vault_service/internal/app"
	"keypair_vault_service/internal/domain/keypair"
	"keypair_vault_service/internal/infrastructure/cryptography"
	"keypair_vault_service/internal/infrastructure/persistence"
	"keypair_vault_service/internal/infrastructure/persistence/models"
	"keypair_vault_service/internal/pkg/config"
	"keypair_vault_service/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds the initialized application services.
type appServices struct {
	provisioning    keypair.ProvisioningService
	messageSecurity keypair.MessageSecurityService
}

// initializeServices wires the store, engine, factory and app services.
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.KeyPairModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	store, err := persistence.NewGormSecureStore(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create secure store: %w", err)
	}

	engine, err := cryptography.NewRSAEngine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA engine: %w", err)
	}

	factory, err := keypair.NewFactory(engine, store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair factory: %w", err)
	}

	provisioning, err := app.NewProvisioningService(factory, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create provisioning service: %w", err)
	}

	messageSecurity, err := app.NewMessageSecurityService(factory, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message security service: %w", err)
	}

	return &appServices{
		provisioning:    provisioning,
		messageSecurity: messageSecurity,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles
// graceful shutdown.
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, services.provisioning, services.messageSecurity)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
