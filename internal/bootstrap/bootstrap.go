package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/electives/cutoffs/internal/app/controllers"
	appRepos "github.com/electives/cutoffs/internal/app/repositories"
	appRoutes "github.com/electives/cutoffs/internal/app/routes"
	appServices "github.com/electives/cutoffs/internal/app/services"
	"github.com/electives/cutoffs/internal/config"
	appMiddleware "github.com/electives/cutoffs/internal/middleware"
	"github.com/electives/cutoffs/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	Services           *appServices.Services
	ElectiveController *appControllers.ElectiveController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := SetupLogger(cfg)
	return cfg, lgr, nil
}

// SetupLogger configures the global logger from cfg and returns it.
func SetupLogger(cfg *config.Config) zerolog.Logger {
	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: logger.Format(strings.ToLower(cfg.Logging.Format)),
	})

	lgr := logger.Logger()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return lgr
}

// BuildDependencies loads the dataset and initializes services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.Repos, err = appRepos.NewRepositories(cfg.Dataset.Path)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load elective dataset")
		return nil, fmt.Errorf("failed to load elective dataset: %w", err)
	}

	source := cfg.Dataset.Path
	if source == "" {
		source = "built-in"
	}
	lgr.Info().Str("source", source).Int("electives", deps.Repos.ElectiveRepository.Len()).Msg("Elective dataset loaded")

	deps.Services, err = appServices.NewServices(deps.Repos, appServices.ElectiveServiceOptions{
		QueryCacheSize: cfg.Cache.QuerySize,
		StatsTTL:       cfg.Cache.StatsTTL,
	}, cfg.Links.BaseURL, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	deps.ElectiveController = appControllers.NewElectiveController(deps.Services.Electives, deps.Services.CourseLinks)
	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch {
	case cfg.Server.Mode == "test":
		gin.SetMode(gin.TestMode)
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router, deps.ElectiveController)
	appRoutes.SetupSwagger(router)
	return router
}
