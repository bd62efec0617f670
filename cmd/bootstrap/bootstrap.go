package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-records/config"
	deliveryHttp "clinic-records/internal/delivery/http"
	"clinic-records/internal/delivery/http/handler"
	"clinic-records/internal/delivery/http/middleware"
	"clinic-records/internal/infrastructure/cache"
	"clinic-records/internal/infrastructure/database"
	"clinic-records/internal/repository"
	"clinic-records/internal/service"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
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

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Create the five relations if absent; idempotent, runs on every start.
	if err := database.EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	logrus.Info("Database schema ensured")

	// Redis is optional; without it the reference-search cache is disabled.
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	} else {
		logrus.Info("Redis not configured, reference-search cache disabled")
	}

	// Initialize all layers
	server := initializeServer(cfg, db, app.RedisClient)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	visitRepo := repository.NewVisitRepository()
	diagnosisRepo := repository.NewDiagnosisRepository()
	icdRepo := repository.NewICD10Repository()
	templateRepo := repository.NewTemplateRepository()

	// Initialize services
	pdfService := service.NewVisitPDFService()
	icdCache := service.NewICDCacheService(redisClient, log, cfg.ICD.CacheTTL)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, visitRepo)
	visitUsecase := usecase.NewVisitUsecase(db, log, patientRepo, visitRepo, diagnosisRepo, icdRepo, pdfService)
	icd10Usecase := usecase.NewICD10Usecase(db, log, icdRepo, icdCache)
	templateUsecase := usecase.NewTemplateUsecase(db, log, templateRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, visitRepo)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase, customValidator)
	icd10Handler := handler.NewICD10Handler(icd10Usecase)
	templateHandler := handler.NewTemplateHandler(templateUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, visitHandler, icd10Handler, templateHandler, dashboardHandler, requestIDMiddleware, corsMiddleware)
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

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
