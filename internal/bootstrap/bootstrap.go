package bootstrap

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/registrar/internal/app/controllers"
	appRepos "github.com/yigit/registrar/internal/app/repositories"
	appRoutes "github.com/yigit/registrar/internal/app/routes"
	appServices "github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/config"
	appMiddleware "github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/filestorage"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/pkg/websocket"
	"github.com/yigit/registrar/internal/seed"
)

// Version is reported by the health endpoint and the version command
var Version = "dev"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Registry    *prometheus.Registry
	HTTPMetrics *appMiddleware.HTTPMetrics
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	FileStorage *filestorage.LocalStorage
	Hub         *websocket.Hub
	Dispatcher  *appServices.NotificationDispatcher
	Controllers *appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: logger.Format(strings.ToLower(cfg.Logging.Format)),
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes metrics, repositories, services, the
// notification hub and controllers, then applies the seed fixture when one
// is configured. The hub and dispatcher are not started here.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.HTTPMetrics = appMiddleware.NewHTTPMetrics(deps.Registry)

	deps.Repos = appRepos.NewRepositories(appRepos.NewMetrics(deps.Registry))
	deps.Services = appServices.NewServices(deps.Repos)

	deps.FileStorage = filestorage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.BaseURL)

	deps.Hub = websocket.NewHub(logger.Component("websocket"))
	deps.Dispatcher = appServices.NewNotificationDispatcher(
		deps.Services.NotificationService,
		deps.Hub,
		helpers.ParseDuration(cfg.Notifications.DispatchInterval, 5*time.Second),
	)

	deps.Controllers = &appRoutes.Controllers{
		Student:      appControllers.NewStudentController(deps.Services.StudentService),
		Instructor:   appControllers.NewInstructorController(deps.Services.InstructorService),
		Department:   appControllers.NewDepartmentController(deps.Services.DepartmentService, deps.Services.CourseService),
		Course:       appControllers.NewCourseController(deps.Services.CourseService),
		Enrollment:   appControllers.NewEnrollmentController(deps.Services.EnrollmentService),
		Notification: appControllers.NewNotificationController(deps.Services.NotificationService),
		Report:       appControllers.NewReportController(deps.Services.ReportService, deps.FileStorage),
		Health:       appControllers.NewHealthController(deps.Repos, Version),
		Stream:       websocket.NewHandler(deps.Hub, logger.Component("websocket")),
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, cfg.Seed.File, deps.Services, logger.Component("seed")); err != nil {
			// Partial seed data is still served
			lgr.Error().Err(err).Str("file", cfg.Seed.File).Msg("Failed to apply seed data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	if cfg.Metrics.Enabled {
		router.Use(deps.HTTPMetrics.Handler())
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
		lgr.Info().Str("path", cfg.Metrics.Path).Msg("Metrics endpoint enabled")
	}

	appRoutes.SetupRouter(router, deps.Controllers)

	// Archived reports
	router.Static(cfg.Storage.BaseURL, cfg.Storage.Path)

	return router
}
