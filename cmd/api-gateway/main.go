package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/coursepilot/schedule-optimizer-api/api/swagger"
	"github.com/coursepilot/schedule-optimizer-api/internal/catalog"
	"github.com/coursepilot/schedule-optimizer-api/internal/handler"
	internalmiddleware "github.com/coursepilot/schedule-optimizer-api/internal/middleware"
	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	"github.com/coursepilot/schedule-optimizer-api/internal/repository"
	"github.com/coursepilot/schedule-optimizer-api/internal/service"
	"github.com/coursepilot/schedule-optimizer-api/pkg/cache"
	"github.com/coursepilot/schedule-optimizer-api/pkg/config"
	"github.com/coursepilot/schedule-optimizer-api/pkg/logger"
	corsmiddleware "github.com/coursepilot/schedule-optimizer-api/pkg/middleware/cors"
	reqidmiddleware "github.com/coursepilot/schedule-optimizer-api/pkg/middleware/requestid"
)

// @title Schedule Optimizer API
// @version 0.1.0
// @description Scores class sections against student preferences and finds conflict-free schedule combinations
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var redisClient *redis.Client
	redisClient, err = cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, catalog caching disabled", zap.Error(err))
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	var catalogClient *catalog.Client
	if cfg.Catalog.Enabled {
		catalogClient = catalog.NewClient(cfg.Catalog, logr)
	}

	var seed []models.Section
	if cfg.Catalog.CSVSeedFile != "" {
		seed, err = catalog.LoadSectionsCSV(cfg.Catalog.CSVSeedFile)
		if err != nil {
			logr.Warn("csv seed load failed", zap.String("file", cfg.Catalog.CSVSeedFile), zap.Error(err))
		} else {
			logr.Info("csv seed loaded", zap.Int("sections", len(seed)))
		}
	}

	var catalogSvc *service.CatalogService
	if catalogClient != nil {
		catalogSvc = service.NewCatalogService(catalogClient, cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, seed, logr)
	} else {
		catalogSvc = service.NewCatalogService(nil, nil, metricsSvc, cfg.Catalog.CacheTTL, seed, logr)
	}

	optimizerSvc := service.NewOptimizerService(cfg.Optimizer, metricsSvc, logr)
	exportSvc := service.NewExportService(nil, nil, logr)

	optimizerHandler := handler.NewOptimizerHandler(optimizerSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	var readyCheck func(ctx context.Context) error
	if redisClient != nil {
		readyCheck = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	metricsHandler := handler.NewMetricsHandler(metricsSvc, readyCheck)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/sections/analyze", optimizerHandler.Analyze)
		api.POST("/sections/filter", optimizerHandler.Filter)
		api.POST("/schedules/combinations", optimizerHandler.Combinations)

		if cfg.Export.Enabled {
			api.POST("/schedules/export", exportHandler.Export)
		}

		api.GET("/semesters", catalogHandler.Semesters)
		api.GET("/courses", catalogHandler.Courses)
		api.GET("/sections", catalogHandler.Sections)
		api.DELETE("/catalog/cache", catalogHandler.InvalidateCache)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "catalog", cfg.Catalog.Enabled)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
