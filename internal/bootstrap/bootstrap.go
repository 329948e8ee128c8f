// Package bootstrap assembles the application: configuration, logging,
// database pool, repositories, services, controllers, and the router.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/controllers"
	"github.com/internlink/internlink/internal/app/repositories"
	"github.com/internlink/internlink/internal/app/routes"
	"github.com/internlink/internlink/internal/app/services"
	"github.com/internlink/internlink/internal/config"
	"github.com/internlink/internlink/internal/db"
	"github.com/internlink/internlink/internal/middleware"
	"github.com/internlink/internlink/internal/pkg/auth"
	"github.com/internlink/internlink/internal/pkg/logger"
	"github.com/internlink/internlink/internal/seed"
)

// Application holds the assembled runtime pieces.
type Application struct {
	Config *config.Config
	DB     *db.PostgresDB
	Router *gin.Engine
}

// New loads configuration and wires every layer together.
func New(configPath string) (*Application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background(), database.Pool); err != nil {
		database.Close()
		return nil, err
	}

	userRepo := repositories.NewUserRepository(database.Pool)
	studentRepo := repositories.NewStudentRepository(database.Pool)
	programRepo := repositories.NewProgramRepository(database.Pool)
	feedbackRepo := repositories.NewFeedbackRepository(database.Pool)
	dashboardRepo := repositories.NewDashboardRepository(database.Pool)

	if err := seed.EnsureAdmin(context.Background(), userRepo, cfg); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		TokenExpiration: cfg.TokenExpiration(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	feedbackPolicy := appauth.NewFeedbackPolicy(studentRepo)
	studentPolicy := appauth.NewStudentPolicy()
	programPolicy := appauth.NewProgramPolicy()

	authService := services.NewAuthService(userRepo, jwtService)
	userService := services.NewUserService(userRepo)
	studentService := services.NewStudentService(studentRepo, studentPolicy)
	programService := services.NewProgramService(programRepo, programPolicy)
	feedbackService := services.NewFeedbackService(feedbackRepo, feedbackPolicy)
	dashboardService := services.NewDashboardService(dashboardRepo)

	authMW := middleware.NewAuthMiddleware(jwtService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.Register(router, routes.Controllers{
		Auth:       controllers.NewAuthController(authService),
		User:       controllers.NewUserController(userService),
		Student:    controllers.NewStudentController(studentService),
		Program:    controllers.NewProgramController(programService),
		Feedback:   controllers.NewFeedbackController(feedbackService),
		Supervisor: controllers.NewSupervisorController(studentService),
		Dashboard:  controllers.NewDashboardController(dashboardService),
	}, authMW)

	return &Application{
		Config: cfg,
		DB:     database,
		Router: router,
	}, nil
}
