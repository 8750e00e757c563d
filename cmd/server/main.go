package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/config"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/events"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/handler"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/middleware"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env is optional, used for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting smartone-erp service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)

	minioClient, err := initMinIO(cfg.MinIO)
	if err != nil {
		zapLogger.Warn("Object storage unavailable, capture uploads disabled", zap.Error(err))
	}

	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, zapLogger)
	defer publisher.Close()

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, service.Deps{
		DB:          db,
		Redis:       rdb,
		MinIO:       minioClient,
		MinIOBucket: cfg.MinIO.Bucket,
		Publisher:   publisher,
		JWT:         cfg.JWT,
		Logger:      zapLogger,
	})
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	if cfg.Host == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinIO(cfg config.MinIOConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", h.Auth.Me)

			users := authorized.Group("/users")
			{
				users.GET("", h.Auth.ListUsers)
				users.POST("", middleware.RequireRole("admin"), h.Auth.CreateUser)
			}

			customers := authorized.Group("/customers")
			{
				customers.GET("", h.Customer.List)
				customers.POST("", h.Customer.Create)
				customers.GET("/:id", h.Customer.Get)
				customers.PUT("/:id", h.Customer.Update)
				customers.DELETE("/:id", middleware.RequireRole("admin"), h.Customer.Delete)
			}

			orders := authorized.Group("/orders")
			{
				orders.GET("", h.Order.List)
				orders.POST("", h.Order.Create)
				orders.GET("/export", h.Order.Export)
				orders.GET("/:id", h.Order.Get)
				orders.PUT("/:id", h.Order.Update)
				orders.PATCH("/:id", h.Order.UpdateDesign)
				orders.DELETE("/:id", middleware.RequireRole("admin"), h.Order.Delete)
				orders.POST("/:id/stage", middleware.RequireRole("production"), h.Order.AdvanceStage)
				orders.GET("/:id/production-logs", h.Order.ListProductionLogs)
				orders.POST("/:id/captures", middleware.RequireRole("designer"), h.Order.UploadCapture)
			}

			inventory := authorized.Group("/inventory")
			{
				inventory.POST("/paper-request/validate", h.Paper.ValidateBarcode)
				inventory.GET("/paper-stocks", h.Paper.ListStocks)
				inventory.POST("/paper-stocks", h.Paper.InboundStock)
				inventory.POST("/paper-stocks/:id/approve", middleware.RequireRole("production"), h.Paper.ApproveStock)
				inventory.GET("/paper-requests", h.Paper.ListRequests)
				inventory.POST("/paper-requests", h.Paper.CreateRequest)
				inventory.POST("/paper-requests/:id/approve", middleware.RequireRole("production"), h.Paper.ApproveRequest)

				inventory.GET("/fabric-stocks", h.Fabric.List)
				inventory.POST("/fabric-stocks", h.Fabric.Inbound)
				inventory.GET("/fabric-stocks/:id", h.Fabric.Get)
				inventory.POST("/fabric-stocks/:id/outbound", h.Fabric.Outbound)
				inventory.POST("/fabric-stocks/:id/adjust", h.Fabric.Adjust)
				inventory.GET("/fabric-stocks/:id/transactions", h.Fabric.ListTransactions)
			}

			finance := authorized.Group("/finance")
			finance.Use(middleware.RequireRole("finance"))
			{
				finance.GET("/accounts", h.Finance.ListAccounts)
				finance.POST("/accounts", h.Finance.CreateAccount)
				finance.GET("/budgets", h.Finance.ListBudgets)
				finance.POST("/budgets", h.Finance.CreateBudget)
				finance.GET("/payables", h.Finance.ListPayables)
				finance.POST("/payables", h.Finance.CreatePayable)
				finance.POST("/payables/:id/pay", h.Finance.PayPayable)
				finance.GET("/journal-entries", h.Finance.ListJournalEntries)
				finance.POST("/journal-entries", h.Finance.CreateJournalEntry)
				finance.GET("/journal-entries/:id", h.Finance.GetJournalEntry)
				finance.POST("/journal-entries/:id/post", h.Finance.PostJournalEntry)
			}
		}
	}
}
