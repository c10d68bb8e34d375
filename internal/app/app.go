package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creatorcrewz/database"
	"creatorcrewz/internal/auth"
	"creatorcrewz/internal/config"
	"creatorcrewz/internal/email"
	"creatorcrewz/internal/handlers"
	"creatorcrewz/internal/logger"
	"creatorcrewz/internal/middleware"
	"creatorcrewz/internal/ratelimit"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/internal/routes"
	"creatorcrewz/internal/services"
	"creatorcrewz/internal/signup"
	"creatorcrewz/internal/validator"
	"creatorcrewz/internal/web"
	"creatorcrewz/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the long-lived objects the router is built from.
type Dependencies struct {
	DB       *gorm.DB
	Tokens   *auth.TokenManager
	Services *services.ServiceContainer
	Forms    signup.Store
	Limiter  ratelimit.Limiter
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database connected")

	tokens := auth.NewTokenManager(jwtSecret(cfg), cfg.JWTTTL())
	container, err := initializeServices(cfg, tokens)
	if err != nil {
		logger.Fatal("Failed to initialize services", "error", err)
	}

	forms := signup.NewMemoryStore(cfg.SignupSessionTTL())
	go forms.Run(ctx, time.Minute)

	limiter := initializeLimiter(ctx, cfg)
	workers.NewInvitationWorker(gormDB, container.InvitationService, workers.DefaultPruneInterval).Start(ctx)

	ginRouter, err := SetupRouter(cfg, &Dependencies{
		DB:       gormDB,
		Tokens:   tokens,
		Services: container,
		Forms:    forms,
		Limiter:  limiter,
	})
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           corsHandler(cfg).Handler(ginRouter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
	}

	go func() {
		logger.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server stopped")
}

// SetupRouter builds the gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := web.LoadTemplates()
	if err != nil {
		return nil, err
	}

	appHandlers := initializeHandlers(cfg, deps)

	ginRouter := gin.New()
	ginRouter.SetHTMLTemplate(tmpl)
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(deps.DB))
	ginRouter.Use(middleware.SessionMiddleware(deps.Tokens))

	routes.RegisterRoutes(ginRouter, appHandlers, deps.Limiter)
	return ginRouter, nil
}

func initializeServices(cfg *config.Config, tokens *auth.TokenManager) (*services.ServiceContainer, error) {
	templates, err := email.LoadTemplates()
	if err != nil {
		return nil, err
	}
	mailer := email.NewSender(email.NewProvider(email.ConfigFrom(cfg)), templates)

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	invitationRepo := repositories.NewInvitationRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	projectRepo := repositories.NewProjectRepository()
	reviewRepo := repositories.NewReviewRepository()
	messageRepo := repositories.NewMessageRepository()

	v := validator.New()
	invitationService := services.NewInvitationService(invitationRepo, v)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, profileRepo, invitationService, tokens, mailer, v),
		InvitationService:  invitationService,
		JobService:         services.NewJobService(jobRepo, userRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, projectRepo, userRepo),
		ProjectService:     services.NewProjectService(projectRepo, jobRepo, messageRepo),
		ReviewService:      services.NewReviewService(reviewRepo, projectRepo),
	}, nil
}

func initializeHandlers(cfg *config.Config, deps *Dependencies) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())
	svc := deps.Services

	return &handlers.AppHandlers{
		LandingHandler: handlers.NewLandingHandler(),
		SignupHandler:  handlers.NewSignupHandler(baseHandler, deps.Forms, svc.AuthService, cfg.SignupSessionTTL(), cfg.Server.SecureCookies),
		AuthHandler:    handlers.NewAuthHandler(baseHandler, svc.AuthService),
		JobHandler:     handlers.NewJobHandler(baseHandler, svc.JobService, svc.ReviewService),
		HealthHandler:  handlers.NewHealthHandler(baseHandler),
	}
}

// initializeLimiter prefers Redis so limits hold across instances, and falls back to memory.
func initializeLimiter(ctx context.Context, cfg *config.Config) ratelimit.Limiter {
	attempts, window := cfg.Signup.RateLimitAttempts, cfg.SignupRateWindow()

	if cfg.Redis.Addr != "" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			logger.Info("Rate limiter backed by Redis", "addr", cfg.Redis.Addr)
			go func() {
				<-ctx.Done()
				_ = client.Close()
			}()
			return ratelimit.NewRedisLimiter(client, "creatorcrewz:ratelimit:", attempts, window)
		}
		logger.Warn("Redis unavailable, using in-memory rate limiter", "error", err)
	}

	limiter := ratelimit.NewMemoryLimiter(attempts, window)
	workers.NewPruneWorker("ratelimit", limiter, window).Start(ctx)
	return limiter
}

func corsHandler(cfg *config.Config) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
}

// jwtSecret refuses to run production without a secret; development gets a per-process one.
func jwtSecret(cfg *config.Config) string {
	if cfg.JWT.Secret != "" {
		return cfg.JWT.Secret
	}
	if cfg.Server.Env != "development" {
		logger.Fatal("JWT secret is not configured")
	}
	logger.Warn("JWT secret is not configured, using a random one; sessions end on restart")
	return uuid.NewString()
}
