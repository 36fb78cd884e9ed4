package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-appointment-api/config"
	deliveryHttp "medical-appointment-api/internal/delivery/http"
	"medical-appointment-api/internal/delivery/http/handler"
	"medical-appointment-api/internal/delivery/http/middleware"
	domainRepo "medical-appointment-api/internal/domain/repository"
	"medical-appointment-api/internal/infrastructure/cache"
	"medical-appointment-api/internal/infrastructure/database"
	"medical-appointment-api/internal/repository"
	"medical-appointment-api/internal/repository/memory"
	"medical-appointment-api/internal/repository/mongodb"
	"medical-appointment-api/internal/service"
	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/jwt"
	"medical-appointment-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	MongoClient *mongo.Client
	RedisClient *redis.Client
	Server      *http.Server
	rateLimiter *middleware.RateLimiter
}

// repositories is the store selected by STORE_DRIVER.
type repositories struct {
	users        domainRepo.UserRepository
	appointments domainRepo.AppointmentRepository
	records      domainRepo.RecordRepository
	auditLogs    domainRepo.AuditLogRepository
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Log:    NewLogger(cfg.Log),
	}

	repos, err := app.initStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	revoker, err := app.initTokenRevoker(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = app.initializeServer(repos, revoker)
	return app, nil
}

// NewLogger configures the logrus logger
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func (app *App) initStore(ctx context.Context) (*repositories, error) {
	switch app.Config.DB.Driver {
	case config.StoreDriverMemory:
		app.Log.Warn("Using in-memory store; data is lost on restart")
		return &repositories{
			users:        memory.NewUserRepository(),
			appointments: memory.NewAppointmentRepository(),
			records:      memory.NewRecordRepository(),
			auditLogs:    memory.NewAuditLogRepository(),
		}, nil
	case config.StoreDriverMongo:
		return app.initMongoStore(ctx)
	}

	db, err := database.NewPostgresConnection(app.Config.DB, app.Log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	if app.Config.DB.AutoMigrate {
		if err := RunMigrations(db, app.Log, MigrateUp); err != nil {
			return nil, err
		}
	}

	return &repositories{
		users:        repository.NewUserRepository(db),
		appointments: repository.NewAppointmentRepository(db),
		records:      repository.NewRecordRepository(db),
		auditLogs:    repository.NewAuditLogRepository(db),
	}, nil
}

func (app *App) initMongoStore(ctx context.Context) (*repositories, error) {
	client, err := database.NewMongoClient(ctx, app.Config.Mongo, app.Log)
	if err != nil {
		return nil, err
	}
	app.MongoClient = client

	db := client.Database(app.Config.Mongo.Database)
	if app.Config.DB.AutoMigrate {
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return nil, err
		}
		app.Log.Info("MongoDB indexes ensured")
	}

	return &repositories{
		users:        mongodb.NewUserRepository(db),
		appointments: mongodb.NewAppointmentRepository(db),
		records:      mongodb.NewRecordRepository(db),
		auditLogs:    mongodb.NewAuditLogRepository(db),
	}, nil
}

func (app *App) initTokenRevoker(ctx context.Context) (service.TokenRevoker, error) {
	if !app.Config.Redis.Enabled {
		return service.NewMemoryTokenRevoker(), nil
	}

	client, err := cache.NewRedisClient(ctx, app.Config.Redis, app.Log)
	if err != nil {
		return nil, err
	}
	app.RedisClient = client
	return service.NewRedisTokenRevoker(client), nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(repos *repositories, revoker service.TokenRevoker) *http.Server {
	cfg := app.Config
	log := app.Log

	var jwtService *jwt.JWTService
	if cfg.JWT.Secret != "" {
		jwtService = jwt.NewJWTService(cfg.JWT)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	auditService := service.NewAuditService(log, repos.auditLogs)
	policy := usecase.NewBookingPolicy(cfg.Booking.CheckConflicts, cfg.Booking.DefaultStatus)
	log.Infof("Booking policy: check_conflicts=%t default_status=%s", policy.CheckConflicts, policy.DefaultStatus)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, repos.users, jwtService, revoker, auditService, cfg.Auth.IssueToken)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repos.appointments, auditService, policy, cfg.Location(), nil)
	profileUsecase := usecase.NewProfileUsecase(log, repos.users, auditService)
	recordUsecase := usecase.NewRecordUsecase(log, repos.records)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, repos.auditLogs)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	recordHandler := handler.NewRecordHandler(recordUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		authHandler,
		appointmentHandler,
		profileHandler,
		recordHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		app.rateLimiter,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until ctx is done or SIGINT/SIGTERM
// arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		app.Close()
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	app.rateLimiter.Stop()

	// Close database connection
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.MongoClient.Disconnect(ctx); err != nil {
			app.Log.Warnf("Failed to disconnect MongoDB: %v", err)
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
