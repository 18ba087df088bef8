package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docrech/config"
	deliveryHttp "docrech/internal/delivery/http"
	"docrech/internal/delivery/http/handler"
	"docrech/internal/delivery/http/middleware"
	domainRepo "docrech/internal/domain/repository"
	"docrech/internal/infrastructure/cache"
	"docrech/internal/infrastructure/database"
	"docrech/internal/repository"
	"docrech/internal/usecase"
	"docrech/pkg/jwt"
	"docrech/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, gormLogLevel(cfg.App))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	} else {
		logrus.Info("Redis disabled, search analytics off")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, app.RedisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func gormLogLevel(cfg config.AppConfig) logger.LogLevel {
	if cfg.IsDevelopment() {
		return logger.Info
	}
	return logger.Warn
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	specialtyRepo := repository.NewSpecialtyRepository(db)
	diseaseRepo := repository.NewDiseaseRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	pharmacyRepo := repository.NewPharmacyRepository(db)

	var analyticsRepo domainRepo.SearchAnalyticsRepository
	if redisClient != nil {
		analyticsRepo = repository.NewSearchAnalyticsRepository(redisClient)
	}

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	analyticsUsecase := usecase.NewSearchAnalyticsUsecase(log, analyticsRepo)
	catalogUsecase := usecase.NewCatalogUsecase()
	specialtyUsecase := usecase.NewSpecialtyUsecase(log, specialtyRepo, analyticsUsecase)
	diseaseUsecase := usecase.NewDiseaseUsecase(log, diseaseRepo, analyticsUsecase)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, diseaseRepo, analyticsUsecase, cfg.Contact.WhatsAppCountryCode)
	pharmacyUsecase := usecase.NewPharmacyUsecase(log, pharmacyRepo, analyticsUsecase)

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, analyticsUsecase, customValidator)
	specialtyHandler := handler.NewSpecialtyHandler(specialtyUsecase, customValidator)
	diseaseHandler := handler.NewDiseaseHandler(diseaseUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	pharmacyHandler := handler.NewPharmacyHandler(pharmacyUsecase, customValidator)

	// Initialize middleware
	var authMiddleware *middleware.AuthMiddleware
	jwtService := jwt.NewJWTService(cfg.Auth)
	if jwtService.Enabled() {
		authMiddleware = middleware.NewAuthMiddleware(jwtService)
	} else {
		logrus.Warn("AUTH_JWT_SECRET not set, API key checks disabled")
	}
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		catalogHandler,
		specialtyHandler,
		diseaseHandler,
		doctorHandler,
		pharmacyHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
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
