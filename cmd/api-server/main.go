package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"shelfmate/database"
	"shelfmate/internal/cache"
	"shelfmate/internal/config"
	"shelfmate/internal/httpapi/handler"
	"shelfmate/internal/httpapi/middleware"
	"shelfmate/internal/httpapi/repository"
	"shelfmate/internal/httpapi/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not get database instance: %v", err)
	}
	defer sqlDB.Close()

	// The stats cache is optional; without redis the service computes
	// stats from the database on every request.
	statsCache := cache.NewDisabledStatsCache()
	if cfg.RedisAddr != "" {
		statsCache, err = cache.NewStatsCache(cfg.RedisAddr, cfg.RedisPassword, cfg.StatsCacheTTL)
		if err != nil {
			logger.Warn("redis unavailable, stats cache disabled", "error", err)
			statsCache = cache.NewDisabledStatsCache()
		} else {
			logger.Info("stats cache enabled", "addr", cfg.RedisAddr)
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	bookRepo := repository.NewBookRepository(db)
	shelfRepo := repository.NewShelfRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	bookSvc := service.NewBookService(bookRepo)
	historySvc := service.NewHistoryService(historyRepo, userRepo, logger)
	librarySvc := service.NewLibraryService(shelfRepo, userRepo, bookRepo, loanRepo, historySvc, statsCache, logger)
	loanSvc := service.NewLoanService(loanRepo, shelfRepo, historySvc, statsCache, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, cfg.AccessTokenTTL)
	userHandler := handler.NewUserHandler(userSvc)
	bookHandler := handler.NewBookHandler(bookSvc)
	libraryHandler := handler.NewLibraryHandler(librarySvc)
	loanHandler := handler.NewLoanHandler(loanSvc)
	historyHandler := handler.NewHistoryHandler(historySvc)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	authHandler.RegisterRoutes(api.Group("/auth"))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	userHandler.RegisterRoutes(protected.Group("/users"))
	bookHandler.RegisterRoutes(protected.Group("/books"))
	libraryHandler.RegisterRoutes(protected.Group("/users/:userId/library"))
	loanHandler.RegisterRoutes(protected.Group("/users/:userId/loans"))
	historyHandler.RegisterRoutes(protected.Group("/users/:userId/history"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting HTTP server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
