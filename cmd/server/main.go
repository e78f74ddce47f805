package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	adoptionapp "github.com/pawlig/backend/internal/application/adoption"
	aiapp "github.com/pawlig/backend/internal/application/ai"
	catalogapp "github.com/pawlig/backend/internal/application/catalog"
	identityapp "github.com/pawlig/backend/internal/application/identity"
	mediaapp "github.com/pawlig/backend/internal/application/media"
	partnerapp "github.com/pawlig/backend/internal/application/partner"
	tradeapp "github.com/pawlig/backend/internal/application/trade"
	"github.com/pawlig/backend/internal/infrastructure/ai"
	"github.com/pawlig/backend/internal/infrastructure/auth"
	"github.com/pawlig/backend/internal/infrastructure/config"
	"github.com/pawlig/backend/internal/infrastructure/logger"
	"github.com/pawlig/backend/internal/infrastructure/persistence"
	"github.com/pawlig/backend/internal/infrastructure/storage"
	"github.com/pawlig/backend/internal/interfaces/http/handler"
	"github.com/pawlig/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting PawLig backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLevel := gormlogger.Silent
	if cfg.Log.Level == "debug" {
		gormLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabase(&cfg.Database, log, gormLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Token blacklist: Redis in normal operation, in-memory fallback for
	// local development without Redis.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Object storage: S3-compatible when configured, in-memory stub
	// otherwise so uploads keep working in development.
	var objectStorage mediaapp.ObjectStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			cancel()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		objectStorage = s3Storage
		log.Info("Object storage connected", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		log.Warn("No storage bucket configured, using in-memory object storage")
		objectStorage = storage.NewStubObjectStorage()
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	auditRepo := persistence.NewGormUserAuditRepository(db.DB)
	shelterRepo := persistence.NewGormShelterRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	petRepo := persistence.NewGormPetRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	adoptionRepo := persistence.NewGormAdoptionRepository(db.DB)
	favoriteRepo := persistence.NewGormFavoriteRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	adoptionTxScope := persistence.NewGormAdoptionTransactionScope(db.DB)
	tradeTxScope := persistence.NewGormTradeTransactionScope(db.DB)

	// Application services
	authService := identityapp.NewAuthService(userRepo, shelterRepo, vendorRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, auditRepo, blacklist, jwtService, log)
	shelterService := partnerapp.NewShelterService(shelterRepo, log)
	vendorService := partnerapp.NewVendorService(vendorRepo, log)
	petService := catalogapp.NewPetService(petRepo, shelterRepo, favoriteRepo, adoptionRepo, log)
	productService := catalogapp.NewProductService(productRepo, vendorRepo, log)
	adoptionService := adoptionapp.NewService(adoptionRepo, petRepo, shelterRepo, adoptionTxScope, log)
	favoriteService := adoptionapp.NewFavoriteService(favoriteRepo, petRepo, log)
	orderService := tradeapp.NewOrderService(orderRepo, vendorRepo, tradeTxScope, log)
	uploadService := mediaapp.NewUploadService(objectStorage, int(cfg.Storage.MaxUploadSize), log)
	refineService := aiapp.NewRefineService(ai.NewClient(&cfg.AI, log), log)

	engine, err := router.New(router.Config{
		HTTP:           cfg.HTTP,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
		Handlers: router.Handlers{
			System:   handler.NewSystemHandler(db, version),
			Auth:     handler.NewAuthHandler(authService),
			User:     handler.NewUserHandler(userService),
			Shelter:  handler.NewShelterHandler(shelterService),
			Vendor:   handler.NewVendorHandler(vendorService),
			Pet:      handler.NewPetHandler(petService),
			Product:  handler.NewProductHandler(productService),
			Adoption: handler.NewAdoptionHandler(adoptionService),
			Favorite: handler.NewFavoriteHandler(favoriteService),
			Order:    handler.NewOrderHandler(orderService),
			Upload:   handler.NewUploadHandler(uploadService),
			Refine:   handler.NewRefineHandler(refineService),
		},
	})
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
