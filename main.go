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
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/florett/florett-backend/controllers"
	"github.com/florett/florett-backend/database"
	"github.com/florett/florett-backend/logger"
	"github.com/florett/florett-backend/middleware"
	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/repository"
	"github.com/florett/florett-backend/routes"
	"github.com/florett/florett-backend/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database ---
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.PostgresHost, cfg.PostgresUser, cfg.PostgresPassword,
		cfg.PostgresDB, cfg.PostgresPort, cfg.PostgresSSLMode, cfg.PostgresTimeZone,
	)
	db, err := database.ConnectPostgres(dsn, log,
		&models.Bouquet{}, &models.Order{}, &models.OrderItem{}, &models.Review{},
	)
	if err != nil {
		log.Fatal("DB connection failed", zap.Error(err))
	}

	if cfg.SeedData {
		if err := database.Seed(db, log); err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
	}

	// --- Cart store: Redis when configured, in-memory otherwise ---
	var cartStore repository.CartStore
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("Redis connection failed", zap.Error(err))
		}
		defer redisClient.Close()
		cartStore = repository.NewRedisCartStore(redisClient, cfg.CartTTL)
		log.Info("Using Redis cart store")
	} else {
		cartStore = repository.NewMemoryCartStore()
		log.Warn("REDIS_URL not set, carts will not survive restarts")
	}

	// --- Dependency injection ---
	bouquetRepo := repository.NewGormBouquetRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	reviewRepo := repository.NewGormReviewRepository(db)

	ctrl := routes.Controllers{
		Auth:      controllers.NewAuthController(services.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret, log)),
		Bouquets:  controllers.NewBouquetController(services.NewBouquetService(bouquetRepo, log)),
		Orders:    controllers.NewOrderController(services.NewOrderService(orderRepo, bouquetRepo, log)),
		Reviews:   controllers.NewReviewController(services.NewReviewService(reviewRepo, log)),
		Analytics: controllers.NewAnalyticsController(services.NewAnalyticsService(orderRepo, reviewRepo, bouquetRepo, log)),
		Cart:      controllers.NewCartController(services.NewCartService(cartStore, bouquetRepo, log)),
	}

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", controllers.SessionHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger(log))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	adminOnly := middleware.AuthRequired(cfg.JWTSecret)
	loginLimiter := middleware.RateLimit(rate.Every(time.Minute/10), 5)
	routes.Register(r, ctrl, adminOnly, loginLimiter)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("Florett backend started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		log.Error("Database close error", zap.Error(err))
	}

	log.Info("Florett backend stopped")
}
