package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	appControllers "github.com/hostelhub/hostelhub/internal/app/controllers"
	appRoutes "github.com/hostelhub/hostelhub/internal/app/routes"
	appServices "github.com/hostelhub/hostelhub/internal/app/services"
	"github.com/hostelhub/hostelhub/internal/config"
	appMiddleware "github.com/hostelhub/hostelhub/internal/middleware"
	pkgAuth "github.com/hostelhub/hostelhub/internal/pkg/auth"
	"github.com/hostelhub/hostelhub/internal/pkg/logger"
	"github.com/hostelhub/hostelhub/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                  store.Store
	JWTService             *pkgAuth.JWTService
	AuthMiddleware         *appMiddleware.AuthMiddleware
	HealthController       *appControllers.HealthController
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	HostelController       *appControllers.HostelController
	FeeController          *appControllers.FeeController
	AttendanceController   *appControllers.AttendanceController
	ComplaintController    *appControllers.ComplaintController
	NotificationController *appControllers.NotificationController
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore connects to MongoDB and wraps it in the store adapter.
func SetupStore(ctx context.Context, cfg *config.Config) (*mongo.Client, *store.Mongo, error) {
	client, db, err := store.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		return nil, nil, err
	}
	return client, store.NewMongo(db), nil
}

// BuildDependencies constructs services, controllers and middleware
// around the injected store.
func BuildDependencies(cfg *config.Config, st store.Store, dbName string) *Dependencies {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		TokenTTL: cfg.TokenTTL(),
		Issuer:   cfg.JWT.Issuer,
	})

	authMiddleware := appMiddleware.NewAuthMiddleware(jwtService, st)

	authService := appServices.NewAuthService(st, jwtService)
	studentService := appServices.NewStudentService(st)
	hostelService := appServices.NewHostelService(st)
	feeService := appServices.NewFeeService(st)
	attendanceService := appServices.NewAttendanceService(st)
	complaintService := appServices.NewComplaintService(st)
	notificationService := appServices.NewNotificationService(st)

	return &Dependencies{
		Store:                  st,
		JWTService:             jwtService,
		AuthMiddleware:         authMiddleware,
		HealthController:       appControllers.NewHealthController(st, dbName),
		AuthController:         appControllers.NewAuthController(authService),
		StudentController:      appControllers.NewStudentController(studentService),
		HostelController:       appControllers.NewHostelController(hostelService),
		FeeController:          appControllers.NewFeeController(feeService),
		AttendanceController:   appControllers.NewAttendanceController(attendanceService),
		ComplaintController:    appControllers.NewComplaintController(complaintService),
		NotificationController: appControllers.NewNotificationController(notificationService),
	}
}

// SetupRouter builds the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.HealthController,
		deps.AuthController,
		deps.StudentController,
		deps.HostelController,
		deps.FeeController,
		deps.AttendanceController,
		deps.ComplaintController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	return router
}
