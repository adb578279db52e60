package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-admin/config"
	deliveryHttp "clinic-admin/internal/delivery/http"
	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/infrastructure/cache"
	"clinic-admin/internal/infrastructure/database"
	"clinic-admin/internal/repository"
	"clinic-admin/internal/service"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/jwt"
	"clinic-admin/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg, Log: SetupLogger(cfg.Log.Level)}

	if cfg.DB.AutoMigrate {
		if err := RunMigrations(cfg, app.Log); err != nil {
			return nil, err
		}
	}

	db, err := database.NewPostgresConnection(cfg.DB, gormLogLevel(cfg.App))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, app.Log, db, redisClient)

	return app, nil
}

// SetupLogger configures the standard logrus logger and returns it
func SetupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// RunMigrations applies pending schema migrations
func RunMigrations(cfg *config.Config, log *logrus.Logger) error {
	migrator, err := database.NewMigrator(cfg.DB, log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}

func gormLogLevel(cfg config.AppConfig) logger.LogLevel {
	if cfg.IsDevelopment() {
		return logger.Info
	}
	return logger.Warn
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	sessions := cache.NewRedisSessionStore(redisClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	bookingRules := service.NewBookingRules(log, appointmentRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, sessions, jwtService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, bookingRules)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, bookingRules)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	healthHandler := handler.NewHealthHandler(log, map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error { return database.Ping(ctx, db) },
		"redis":    func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	})

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(
		deliveryHttp.RouterConfig{Prefix: cfg.App.APIPrefix, RequireAuth: cfg.App.RequireAuth},
		authHandler,
		doctorHandler,
		appointmentHandler,
		healthHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
