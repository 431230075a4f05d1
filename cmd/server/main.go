package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mathangi54/Travelling-System/internal/advisor"
	"github.com/mathangi54/Travelling-System/internal/config"
	"github.com/mathangi54/Travelling-System/internal/database"
	"github.com/mathangi54/Travelling-System/internal/handlers"
	"github.com/mathangi54/Travelling-System/internal/middleware"
	"github.com/mathangi54/Travelling-System/internal/services"
	"github.com/mathangi54/Travelling-System/pkg/jwt"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	gin.SetMode(cfg.Server.GinMode)

	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logger.Fatalf("Failed to ensure database schema: %v", err)
	}
	logger.Info("Database ready")

	// Repositories
	tourRepo := database.NewTourRepository(db)
	userRepo := database.NewUserRepository(db)
	bookingRepo := database.NewBookingRepository(db)
	guideRepo := database.NewGuideRepository(db)
	guideRequestRepo := database.NewGuideRequestRepository(db)
	customTourRepo := database.NewCustomTourRepository(db)
	seedRepo := database.NewSeedRepository(db)

	if cfg.Seed.AutoSeed {
		result, err := seedRepo.SeedToursIfEmpty()
		if err != nil {
			logger.Fatalf("Failed to seed demo data: %v", err)
		}
		if result.Seeded {
			logger.WithField("tours_added", result.ToursAdded).Info("demo data seeded")
		}
	}

	// Services
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	priceAdvisor := advisor.New(cfg.Pricing, logger)
	authService := services.NewAuthService(userRepo, jwtService, logger)
	bookingService := services.NewBookingService(bookingRepo, tourRepo, userRepo, priceAdvisor, logger, cfg.Booking.AutoConfirm)
	pricingService := services.NewPricingService(tourRepo, userRepo, bookingRepo, priceAdvisor, logger)
	chatService := services.NewChatService()
	recommendationService := services.NewRecommendationService(tourRepo, userRepo, priceAdvisor, logger)
	demandService := services.NewDemandService(bookingRepo, cfg.Demand.CronSchedule, logger)

	if cfg.Demand.Enabled {
		if err := demandService.Start(); err != nil {
			logger.Fatalf("Failed to start demand service: %v", err)
		}
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	tourHandler := handlers.NewTourHandler(tourRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	guideHandler := handlers.NewGuideHandler(guideRepo)
	guideRequestHandler := handlers.NewGuideRequestHandler(guideRequestRepo, guideRepo)
	customTourHandler := handlers.NewCustomTourHandler(customTourRepo)
	pricingHandler := handlers.NewPricingHandler(pricingService, demandService, func() (bool, string) {
		return priceAdvisor.Enabled(), priceAdvisor.Mode()
	})
	chatHandler := handlers.NewChatHandler(chatService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	seedHandler := handlers.NewSeedHandler(seedRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(db))

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/tours", tourHandler.List)
		api.GET("/tours/:id", tourHandler.Get)

		bookings := api.Group("/bookings")
		bookings.Use(middleware.OptionalAuth(jwtService))
		{
			bookings.POST("", bookingHandler.Create)
			bookings.GET("", bookingHandler.List)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PUT("/:id", bookingHandler.UpdateStatus)
			bookings.DELETE("/:id", bookingHandler.Delete)
		}

		api.GET("/guides", guideHandler.List)
		api.GET("/guides/:id", guideHandler.Get)

		api.POST("/guide-requests", guideRequestHandler.Create)
		api.GET("/guide-requests", guideRequestHandler.List)
		api.PUT("/guide-requests/:id", guideRequestHandler.UpdateStatus)

		customTours := api.Group("/custom-tour-requests")
		customTours.Use(middleware.OptionalAuth(jwtService))
		{
			customTours.POST("", customTourHandler.Create)
			customTours.GET("", customTourHandler.List)
			customTours.PUT("/:id", customTourHandler.UpdateStatus)
		}

		api.POST("/ai-pricing", middleware.OptionalAuth(jwtService), pricingHandler.Quote)
		api.GET("/ai-recommendations", middleware.RequireAuth(jwtService), recommendationHandler.Get)
		api.GET("/ai-status", pricingHandler.Status)
		api.POST("/ai-demand/refresh", middleware.RequireAuth(jwtService), pricingHandler.RefreshDemand)

		api.POST("/chat", chatHandler.Send)

		api.GET("/seed", seedHandler.Seed)
		api.POST("/seed", seedHandler.Seed)
		api.GET("/seed-sri-lanka", seedHandler.ReseedTours)
		api.GET("/seed-guides", seedHandler.ReseedGuides)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if cfg.Demand.Enabled {
		demandService.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}

// healthCheckHandler reports API and database health
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		health := "healthy"
		status := http.StatusOK
		if err := db.Ping(); err != nil {
			dbStatus = "disconnected"
			health = "degraded"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":    health,
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
