package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "powerfed/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"powerfed/internal/auth"
	"powerfed/internal/cache"
	"powerfed/internal/config"
	"powerfed/internal/db"
	"powerfed/internal/handler"
	"powerfed/internal/llm"
	"powerfed/internal/model"
	"powerfed/internal/ratelimit"
	"powerfed/internal/repository"
	"powerfed/internal/router"
	"powerfed/internal/service"
)

// @title Powerlifting Federation API
// @version 1.0
// @description Administration API for a powerlifting federation: athletes, coaches, competitions, results, training logs, and AI-assisted plans.
// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Athlete{},
		&model.Coach{},
		&model.Competition{},
		&model.Result{},
		&model.Training{},
		&model.NutritionPlan{},
		&model.TrainingPlan{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	limiter := ratelimit.New(ratelimit.DefaultPoints, ratelimit.DefaultWindow)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	llmClient := llm.NewClient(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	athleteRepo := repository.NewAthleteRepository(gormDB)
	coachRepo := repository.NewCoachRepository(gormDB)
	competitionRepo := repository.NewCompetitionRepository(gormDB)
	resultRepo := repository.NewResultRepository(gormDB)
	trainingRepo := repository.NewTrainingRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	athleteService := service.NewAthleteService(athleteRepo)
	coachService := service.NewCoachService(coachRepo)
	competitionService := service.NewCompetitionService(competitionRepo)
	resultService := service.NewResultService(resultRepo, athleteRepo, cacheClient)
	performanceService := service.NewPerformanceService(resultRepo, cacheClient)
	trainingService := service.NewTrainingService(trainingRepo)
	planService := service.NewPlanService(planRepo, athleteRepo, llmClient, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	sessionHandler := handler.NewSessionHandler(cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo)
	athleteHandler := handler.NewAthleteHandler(athleteService)
	coachHandler := handler.NewCoachHandler(coachService)
	competitionHandler := handler.NewCompetitionHandler(competitionService)
	resultHandler := handler.NewResultHandler(resultService, performanceService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	planHandler := handler.NewPlanHandler(planService)

	// Register routes
	router.Register(
		e,
		cfg,
		limiter,
		userRepo,
		authHandler,
		sessionHandler,
		userHandler,
		roleHandler,
		athleteHandler,
		coachHandler,
		competitionHandler,
		resultHandler,
		trainingHandler,
		planHandler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()
	log.Printf("Swagger documentation available at: http://localhost:%s/api-docs", cfg.ServerPort)

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("database close: %v", err)
	}
}
