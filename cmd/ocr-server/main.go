package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lexrey20/STDISCM/internal/admin"
	"github.com/lexrey20/STDISCM/internal/cache"
	"github.com/lexrey20/STDISCM/internal/config"
	"github.com/lexrey20/STDISCM/internal/engine"
	"github.com/lexrey20/STDISCM/internal/logging"
	"github.com/lexrey20/STDISCM/internal/pool"
	"github.com/lexrey20/STDISCM/internal/queue"
	"github.com/lexrey20/STDISCM/internal/repository"
	"github.com/lexrey20/STDISCM/internal/server"
	"github.com/lexrey20/STDISCM/proto"
)

func main() {
	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var resultCache cache.Cache
	if cfg.Cache.RedisAddr != "" {
		resultCache = cache.NewRedisCache(initRedis(ctx, cfg.Cache.RedisAddr, logger))
	}

	var repo *repository.RecognitionRepository
	if cfg.DB.DSN != "" {
		repo = repository.NewRecognitionRepository(initDatabase(ctx, cfg.DB.DSN, logger), logger)
		if err := repo.AutoMigrate(ctx); err != nil {
			logger.Fatal("auto migrate failed", zap.Error(err))
		}
	}

	taskQueue := queue.New()
	workerPool := pool.New(cfg.Pool.Workers, taskQueue, func() engine.Engine {
		return engine.NewTesseract()
	}, logger)

	opts := server.Options{
		WaitTimeout: cfg.Server.WaitTimeout,
		DefaultLang: cfg.Server.DefaultLang,
		Cache:       resultCache,
		CacheTTL:    cfg.Cache.TTL,
	}
	if repo != nil {
		opts.Logs = repo
	}
	service := server.New(taskQueue, logger, opts)

	grpcServer := grpc.NewServer()
	proto.RegisterOCRServiceServer(grpcServer, service)

	listener, err := net.Listen("tcp", cfg.Server.ListenAddr)
	if err != nil {
		logger.Fatal("failed to bind listener", zap.String("addr", cfg.Server.ListenAddr), zap.Error(err))
	}

	adminServer := startAdminServer(cfg, workerPool, repo, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("OCR server listening",
			zap.String("addr", cfg.Server.ListenAddr),
			zap.Int("workers", cfg.Pool.Workers))
		errCh <- grpcServer.Serve(listener)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	grpcServer.GracefulStop()
	workerPool.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := adminServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("admin server shutdown failed", zap.Error(err))
	}

	logger.Info("server exited")
}

func startAdminServer(cfg *config.Config, workerPool *pool.Pool, repo *repository.RecognitionRepository, logger *zap.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	var metrics admin.MetricsSource
	if repo != nil {
		metrics = repo
	}
	admin.RegisterRoutes(router, workerPool, metrics, logger, cfg.Admin.JWTSecret, cfg.Admin.JWTAudience)

	srv := &http.Server{
		Addr:    cfg.Admin.ListenAddr,
		Handler: router,
	}
	go func() {
		logger.Info("admin server listening", zap.String("addr", cfg.Admin.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("admin server failed", zap.Error(err))
		}
	}()
	return srv
}

func initDatabase(ctx context.Context, dsn string, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to access db handle", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Fatal("database ping failed", zap.Error(err))
	}
	return db
}

func initRedis(ctx context.Context, addr string, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}
	return client
}
