package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"category_service/config"
	"category_service/internal/delivery"
	grpcdelivery "category_service/internal/delivery/grpc"
	"category_service/internal/domain"
	"category_service/internal/repository"
	"category_service/internal/usecase"
	"category_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Category Service...")

	// --- Repository ---
	categoryRepo, closeDB := buildRepository(cfg, logger)
	defer closeDB()

	// --- Dependency Injection ---
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	categoryServer := grpcdelivery.NewCategoryServer(categoryUseCase, logger)
	logger.Info("Use cases and handlers initialized.")

	router := delivery.NewRouter(logger, categoryHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer := grpc.NewServer()
	grpcdelivery.RegisterCategoryServiceServer(grpcServer, categoryServer)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(grpcdelivery.ServiceName, healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to listen on gRPC port %s: %v", cfg.GrpcPort, err)
	}

	go func() {
		logger.Infof("Starting gRPC server on port %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorf("gRPC server stopped: %v", err)
		}
	}()

	go func() {
		logger.Infof("Starting HTTP server on port %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	healthServer.Shutdown()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP server shutdown: %v", err)
	}
	grpcServer.GracefulStop()
	logger.Info("Category Service stopped.")
}

func buildRepository(cfg *config.Config, logger *logrus.Logger) (domain.CategoryRepository, func()) {
	if cfg.RepositoryBackend == config.BackendMemory {
		logger.Info("Using in-memory category repository.")
		return repository.NewCategoryInMemoryRepository(logger), func() {}
	}

	dialect, err := db.ParseDialect(cfg.DatabaseDriver)
	if err != nil {
		logger.Fatalf("FATAL: %v", err)
	}

	var database *sql.DB
	database, err = db.Connect(dialect, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	logger.Info("Database connection established.")

	if err := db.EnsureSchema(context.Background(), database, dialect); err != nil {
		logger.Fatalf("FATAL: %v", err)
	}

	return repository.NewCategorySQLRepository(database, dialect, logger), func() { _ = database.Close() }
}
