package app

import (
	"context"
	"errors"
	"fmt"

	"lexhub_backend/database"
	"lexhub_backend/internal/ai"
	"lexhub_backend/internal/config"
	"lexhub_backend/internal/handlers"
	"lexhub_backend/internal/logger"
	"lexhub_backend/internal/middleware"
	"lexhub_backend/internal/repositories"
	"lexhub_backend/internal/routes"
	"lexhub_backend/internal/services"
	"lexhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps - внешние зависимости роутера. Тесты подставляют свои.
type Deps struct {
	DB          *gorm.DB
	Completer   ai.Completer
	RateLimiter middleware.RateLimiter
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN, cfg.Server.Env == "development")
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
	}

	if err := Seed(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed database", "error", err)
	}

	completer, closeCompleter := newCompleter(cfg)
	defer closeCompleter()

	ginRouter := SetupRouter(cfg, Deps{
		DB:          gormDB,
		Completer:   completer,
		RateLimiter: newRateLimiter(cfg),
	})

	address := cfg.Address()
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	// 1. Сервисы
	serviceContainer := initializeServices(cfg, deps)

	// 2. Хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer, deps)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, deps.DB)

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, deps Deps) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	lawyerRepo := repositories.NewLawyerRepository()
	categoryRepo := repositories.NewCategoryRepository()
	reviewRepo := repositories.NewReviewRepository()

	return &services.ServiceContainer{
		IdentityService:  services.NewIdentityService(userRepo),
		LawyerService:    services.NewLawyerService(lawyerRepo, userRepo, categoryRepo, reviewRepo),
		DirectoryService: services.NewDirectoryService(lawyerRepo, reviewRepo),
		CategoryService:  services.NewCategoryService(categoryRepo),
		ChatService:      services.NewChatService(ai.NewAdvisor(deps.Completer), cfg.AITimeout()),
	}
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer, deps Deps) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())
	gate := middleware.NewIdentityGate(svc.IdentityService, cfg.Auth.SessionSecret, cfg.Auth.CookieName)

	var chatLimit gin.HandlerFunc
	if deps.RateLimiter != nil {
		chatLimit = middleware.RateLimitMiddleware(deps.RateLimiter, "chat")
	}

	return &handlers.AppHandlers{
		CategoryHandler:   handlers.NewCategoryHandler(baseHandler, svc.CategoryService),
		LawyerHandler:     handlers.NewLawyerHandler(baseHandler, svc.DirectoryService, svc.LawyerService),
		OnboardingHandler: handlers.NewOnboardingHandler(baseHandler, svc.LawyerService, gate),
		AdminHandler:      handlers.NewAdminHandler(baseHandler, svc.LawyerService, gate),
		ChatHandler:       handlers.NewChatHandler(baseHandler, svc.ChatService, chatLimit),
		HealthHandler:     handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// newCompleter - Gemini, либо заглушка без ключа (чат отвечает 500)
func newCompleter(cfg *config.Config) (ai.Completer, func()) {
	if cfg.AI.APIKey == "" {
		logger.Warn("AI api key is not set. Chat endpoint will fail.")
		return unavailableCompleter{}, func() {}
	}

	gemini, err := ai.NewGeminiCompleter(context.Background(), cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", "error", err)
	}
	logger.Info("Gemini client initialized", "model", cfg.AI.Model)
	return gemini, func() {
		if err := gemini.Close(); err != nil {
			logger.Warn("Failed to close Gemini client", "error", err)
		}
	}
}

type unavailableCompleter struct{}

func (unavailableCompleter) Complete(context.Context, ai.CompletionRequest) (string, error) {
	return "", errors.New("ai completer is not configured")
}

// newRateLimiter - Redis при заданном адресе (несколько реплик), иначе в памяти
func newRateLimiter(cfg *config.Config) middleware.RateLimiter {
	if cfg.Redis.Addr == "" {
		return middleware.NewMemoryRateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow())
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory rate limiter", "addr", cfg.Redis.Addr, "error", err)
		_ = client.Close()
		return middleware.NewMemoryRateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow())
	}
	logger.Info("Redis rate limiter enabled", "addr", cfg.Redis.Addr)
	return middleware.NewRedisRateLimiter(client, cfg.RateLimit.Requests, cfg.RateLimitWindow())
}
