package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"washloop.backend/internal/config"
	"washloop.backend/internal/infrastructure/repositories"
	"washloop.backend/internal/interfaces/http/handlers"
	"washloop.backend/internal/interfaces/http/middleware"
	"washloop.backend/internal/usecases"
	"washloop.backend/pkg/crypto"
	"washloop.backend/pkg/jwt"
	"washloop.backend/pkg/logger"
	"washloop.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	listenAndServe  = func(srv *http.Server) error { return srv.ListenAndServe() }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

// shutdownTimeout bounds how long in-flight scans may finish on SIGTERM
const shutdownTimeout = 10 * time.Second

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	settingsRepo := repositories.NewMerchantSettingsRepository(db)
	cardRepo := repositories.NewLoyaltyCardRepository(db)
	washRepo := repositories.NewWashHistoryRepository(db)
	rewardRepo := repositories.NewRewardRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	statsRepo := repositories.NewStatsRepository(db)
	uow := repositories.NewUnitOfWork(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Usecases
	registrationUsecase := usecases.NewRegistrationUsecase(merchantRepo, cardRepo, crypto.GenerateRegistrationCode)
	authUsecase := usecases.NewAuthUsecase(userRepo, customerRepo, merchantRepo, registrationUsecase, uow, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	scanUsecase := usecases.NewScanUsecase(customerRepo, merchantRepo, settingsRepo, cardRepo, washRepo, rewardRepo, notificationRepo, uow, crypto.GenerateRewardCode)
	rewardUsecase := usecases.NewRewardUsecase(rewardRepo, customerRepo, uow)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo, settingsRepo, washRepo)
	customerUsecase := usecases.NewCustomerUsecase(customerRepo, merchantRepo, settingsRepo, cardRepo, washRepo, rewardRepo, notificationRepo)
	dashboardUsecase := usecases.NewDashboardUsecase(statsRepo, washRepo, cardRepo)
	superadminUsecase := usecases.NewSuperadminUsecase(merchantRepo, userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	scanHandler := handlers.NewScanHandler(scanUsecase)
	rewardHandler := handlers.NewRewardHandler(rewardUsecase)
	registrationHandler := handlers.NewRegistrationHandler(registrationUsecase, customerUsecase)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase, dashboardUsecase)
	customerHandler := handlers.NewCustomerHandler(customerUsecase)
	superadminHandler := handlers.NewSuperadminHandler(superadminUsecase, dashboardUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		scanHandler:         scanHandler,
		rewardHandler:       rewardHandler,
		registrationHandler: registrationHandler,
		merchantHandler:     merchantHandler,
		customerHandler:     customerHandler,
		superadminHandler:   superadminHandler,
		authMiddleware:      middleware.AuthMiddleware(jwtService),
		merchantRepo:        merchantRepo,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- listenAndServe(srv)
	}()

	log.Printf("🚀 WashLoop Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case sig := <-quit:
		log.Printf("🛑 Received %s, shutting down server...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Println("✅ Server stopped")
	}
	return nil
}
