// @title Modeva Analytics API
// @version 1.0
// @description Admin sales analytics for the Modeva storefront
// @host localhost:8081
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	product_cache "github.com/Modeva-Ecommerce/modeva-analytics-backend/cache"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/config"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/controllers/cms/analytics_controller"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/controllers/system_controller"
	_ "github.com/Modeva-Ecommerce/modeva-analytics-backend/docs"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/middleware"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/repository"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/routes/cms_routes"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/routes/system_routes"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services/analytics"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connections
	config.ConnectMongo(cfg)
	config.InitCmsDB(cfg)
	config.ConnectRedis(cfg)
	defer config.CloseDB()

	if cfg.AutoMigrate {
		if err := config.MigrateCMS(config.CmsGorm); err != nil {
			log.Fatalf("❌ CMS migration failed: %v", err)
		}
		log.Println("✅ CMS tables migrated")
	}

	indexCtx, cancelIndexes := config.WithTimeout()
	if err := repository.EnsureIndexes(indexCtx, config.StoreDB); err != nil {
		log.Printf("⚠️  failed to ensure indexes: %v", err)
	}
	cancelIndexes()

	// Auth
	jwtService, err := services.NewJWTService(cfg.JWTSecret, cfg.JWTTokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	sessionService := services.NewAdminSessionService(config.CmsGorm)
	go sessionService.RunCleanup(ctx, time.Hour)

	store := repository.NewMongoStore(config.StoreDB, product_cache.New(cfg.ProductCacheTTL))

	resolvers := []services.PrincipalResolver{
		services.NewAdminTokenResolver(jwtService, sessionService, services.NewAdminService(config.CmsGorm)),
	}
	if verifier := config.InitOIDCVerifier(cfg); verifier != nil {
		resolvers = append(resolvers, services.NewOIDCResolver(verifier, store.Users))
	}

	// Analytics
	analyticsOpts := []analytics.Option{analytics.WithTimeout(cfg.RequestTimeout)}
	if cfg.CloudinaryEnabled() {
		thumbnails, err := services.NewThumbnailService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		analyticsOpts = append(analyticsOpts, analytics.WithThumbnails(thumbnails))
		log.Println("✅ Cloudinary thumbnails enabled")
	}
	analyticsService := analytics.NewService(store, analyticsOpts...)

	analyticsController := analytics_controller.NewAnalyticsController(middleware.GinAuthContext{}, analyticsService)
	healthController := system_controller.NewHealthController(map[string]system_controller.PingFunc{
		"mongo":  func(ctx context.Context) error { return config.MongoClient.Ping(ctx, readpref.Primary()) },
		"cms_db": func(ctx context.Context) error { return config.CmsDB.Ping(ctx) },
		"redis":  func(ctx context.Context) error { return config.RedisClient.Ping(ctx).Err() },
	}, 3*time.Second)

	// Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}))

	system_routes.SetupHealthRoutes(router, healthController)

	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.RateLimiter(config.RedisClient, cfg.RateLimit, cfg.RateLimitWindow))
	adminGroup.Use(middleware.Authenticate(resolvers...))
	activityLog := services.NewActivityLogService(config.CmsGorm)
	cms_routes.SetupAnalyticsRoutes(adminGroup, analyticsController, activityLog)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("⚠️  shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ server shutdown: %v", err)
	}
	// activity log writes must land before the CMS pool closes
	if err := activityLog.Drain(shutdownCtx); err != nil {
		log.Printf("⚠️  %v", err)
	}
}
