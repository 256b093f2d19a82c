package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-escrow-ledger/config"
	deliveryHttp "medical-escrow-ledger/internal/delivery/http"
	"medical-escrow-ledger/internal/delivery/http/handler"
	"medical-escrow-ledger/internal/delivery/http/middleware"
	"medical-escrow-ledger/internal/infrastructure/cache"
	"medical-escrow-ledger/internal/repository"
	"medical-escrow-ledger/internal/service"
	"medical-escrow-ledger/internal/usecase"
	"medical-escrow-ledger/pkg/jwt"
	"medical-escrow-ledger/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize stores and the role registry
	roleRegistry := repository.NewRoleRegistry(cfg.Host.AdminAddress)
	clinicRepo := repository.NewClinicRepository()
	patientRepo := repository.NewPatientRepository()
	hospitalRepo := repository.NewHospitalRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize host collaborators
	clock := service.NewSystemClock()
	settlement := service.NewSettlementService(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, cfg.Host, jwtService, redisClient)
	registryUsecase := usecase.NewRegistryUsecase(log, roleRegistry, clinicRepo, patientRepo, hospitalRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, clinicRepo, patientRepo, settlement)
	walletUsecase := usecase.NewWalletUsecase(log, patientRepo, clinicRepo, hospitalRepo, settlement)
	billingUsecase := usecase.NewBillingUsecase(log, hospitalRepo, settlement)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	registryHandler := handler.NewRegistryHandler(registryUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, clock)
	walletHandler := handler.NewWalletHandler(walletUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator, clock)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	serializer := middleware.NewSerializer()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, registryHandler, appointmentHandler, walletHandler, billingHandler, authMiddleware, corsMiddleware, serializer, roleRegistry)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
