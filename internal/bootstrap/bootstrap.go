package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/halitb/certman/internal/app/controllers"
	appRepos "github.com/halitb/certman/internal/app/repositories"
	appRoutes "github.com/halitb/certman/internal/app/routes"
	appServices "github.com/halitb/certman/internal/app/services"
	"github.com/halitb/certman/internal/config"
	"github.com/halitb/certman/internal/db"
	appMiddleware "github.com/halitb/certman/internal/middleware"
	"github.com/halitb/certman/internal/pkg/filestorage"
	"github.com/halitb/certman/internal/pkg/logger"
	"github.com/halitb/certman/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	UserService           appServices.UserService
	EventService          appServices.EventService
	CertificateService    appServices.CertificateService
	DashboardService      appServices.DashboardService
	AuthController        *appControllers.AuthController
	AdminController       *appControllers.AdminController
	EventController       *appControllers.EventController
	CertificateController *appControllers.CertificateController
	DashboardController   *appControllers.DashboardController
	FileController        *appControllers.FileController
	Repos                 *appRepos.Repositories
	FileStorage           *filestorage.LocalStorage
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Default admin bootstrap; errors are logged but not fatal
	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.CertificateService = appServices.NewCertificateService(deps.Repos.CertificateRepository, deps.FileStorage)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.UserRepository, deps.Repos.CertificateRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AdminController = appControllers.NewAdminController(deps.UserService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.CertificateController = appControllers.NewCertificateController(deps.CertificateService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.FileController = appControllers.NewFileController(deps.FileStorage)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RecoveryJSON())
	router.Use(gin.Logger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.EventController,
		deps.CertificateController,
		deps.DashboardController,
		deps.FileController,
	)

	return router
}
