package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/cgpatracker/internal/app/controllers"
	appRepos "github.com/yigit/cgpatracker/internal/app/repositories"
	appRoutes "github.com/yigit/cgpatracker/internal/app/routes"
	appServices "github.com/yigit/cgpatracker/internal/app/services"
	"github.com/yigit/cgpatracker/internal/config"
	appMiddleware "github.com/yigit/cgpatracker/internal/middleware"
	"github.com/yigit/cgpatracker/internal/pkg/chart"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
	"github.com/yigit/cgpatracker/internal/pkg/logger"
	"github.com/yigit/cgpatracker/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Scales              *grading.Registry
	Repos               *appRepos.Repositories
	Redis               *redis.Client // nil with the memory session store
	GradebookService    appServices.GradebookService
	ReportService       appServices.ReportService
	GradebookController *appControllers.GradebookController
	ReportController    *appControllers.ReportController
	WebController       *appControllers.WebController
	HealthController    *appControllers.HealthController
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", "configs/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupSessionStore creates the session repositories. The redis store is
// pinged before use so a bad address fails at startup.
func SetupSessionStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *redis.Client, error) {
	ttl := cfg.SessionTTL()

	if cfg.Session.Store != config.SessionStoreRedis {
		lgr.Info().Dur("ttl", ttl).Msg("Using in-memory session store")
		return appRepos.NewMemoryRepositories(ttl), nil, nil
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("Connecting to redis session store...")
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping redis")
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping failed: %w", err)
	}
	lgr.Info().Msg("Redis connection successfully established.")

	return appRepos.NewRedisRepositories(client, cfg.Redis.Prefix, ttl), client, nil
}

// BuildDependencies initializes the scale registry, services, and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, redisClient *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Repos:  repos,
		Redis:  redisClient,
		Logger: lgr,
	}

	var err error
	deps.Scales, err = grading.NewRegistry(cfg.Grading.DefaultScale, cfg.Grading.Scales...)
	if err != nil {
		lgr.Error().Err(err).Msg("Invalid grade scale configuration")
		return nil, fmt.Errorf("failed to build scale registry: %w", err)
	}

	limits := appServices.Limits{
		MinCredits:        cfg.Grading.MinCredits,
		MaxCredits:        cfg.Grading.MaxCredits,
		MaxStudyHours:     cfg.Grading.MaxStudyHours,
		MaxExtraHours:     cfg.Grading.MaxExtraHours,
		DefaultExtraHours: cfg.Grading.DefaultExtraHours,
	}

	chartOpts := chart.DefaultOptions()
	chartOpts.Width = cfg.Report.ChartWidth
	chartOpts.Height = cfg.Report.ChartHeight
	chartOpts.FontPath = cfg.Report.FontPath
	chartOpts.FontSize = cfg.Report.FontSize

	deps.GradebookService = appServices.NewGradebookService(repos.SessionRepository, deps.Scales, limits, lgr.With().Str("component", "gradebook").Logger())
	deps.ReportService = appServices.NewReportService(chartOpts, lgr.With().Str("component", "report").Logger())

	deps.GradebookController = appControllers.NewGradebookController(deps.GradebookService)
	deps.ReportController = appControllers.NewReportController(deps.GradebookService, deps.ReportService)
	deps.WebController = appControllers.NewWebController(deps.GradebookService, deps.ReportService, lgr)

	var ping func(ctx context.Context) error
	if redisClient != nil {
		ping = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	deps.HealthController = appControllers.NewHealthController(cfg.Session.Store, ping)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 0 || (len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		appMiddleware.Session(appMiddleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.SessionTTL(),
			Secure:     cfg.Session.CookieSecure,
		}),
		appMiddleware.RequestLogger(lgr),
	)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.GradebookController,
		deps.ReportController,
		deps.WebController,
		deps.HealthController,
	)
	router.NoRoute(appMiddleware.NotFound())

	return router, nil
}
