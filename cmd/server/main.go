package main

import (
	"fmt"
	"log"
	"net/http"

	"gofund/internal/config"
	"gofund/internal/handlers/admin"
	"gofund/internal/middleware"
	"gofund/internal/repositories/provider"
	"gofund/internal/services"
	"gofund/pkg/cache"
	"gofund/pkg/logger"
	"gofund/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Persistence backend is chosen once here from DATABASE_TYPE.
	repos, closeDB, err := provider.Build(cfg)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize repositories")
	}
	defer closeDB()

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to redis")
	}
	defer redisCache.Close()

	cacheService := services.NewCacheService(redisCache, appLogger)

	// Initialize services
	languageService := services.NewLanguageService(repos.Languages, cacheService, appLogger)
	currencyService := services.NewCurrencyService(repos.Currencies, cacheService, appLogger)
	dropdownService := services.NewDropdownService(repos.Dropdowns, languageService, cacheService, appLogger)
	templateService := services.NewEmailTemplateService(repos.EmailTemplates, languageService, appLogger)
	metaService := services.NewMetaSettingService(repos.MetaSettings, languageService, appLogger)
	contentService := services.NewCampaignContentService(repos.CampaignFAQs, repos.LeadInvestors, repos.CampaignExtras, cacheService, appLogger)

	// Initialize handlers
	adminHandlers := &routes.AdminHandlers{
		Languages:       admin.NewLanguageHandler(languageService),
		Currencies:      admin.NewCurrencyHandler(currencyService),
		Dropdowns:       admin.NewDropdownHandler(dropdownService),
		EmailTemplates:  admin.NewEmailTemplateHandler(templateService),
		MetaSettings:    admin.NewMetaSettingHandler(metaService),
		CampaignContent: admin.NewCampaignContentHandler(contentService),
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	v1 := router.Group("/api/v1/admin")
	{
		routes.SetupAdminRoutes(v1, adminHandlers)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  cfg.App.Version,
			"database": cfg.Database.Type,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("addr", addr).WithField("database", cfg.Database.Type).Info("Starting server")
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.WithError(err).Fatal("Server stopped")
	}
}
