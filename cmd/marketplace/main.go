package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/marketloop/marketplace/internal/fraud"
	"github.com/marketloop/marketplace/internal/geo"
	"github.com/marketloop/marketplace/internal/recommend"
	"github.com/marketloop/marketplace/internal/trust"
	"github.com/marketloop/marketplace/pkg/common"
	"github.com/marketloop/marketplace/pkg/config"
	"github.com/marketloop/marketplace/pkg/database"
	"github.com/marketloop/marketplace/pkg/logger"
	"github.com/marketloop/marketplace/pkg/middleware"
	redisClient "github.com/marketloop/marketplace/pkg/redis"
)

const serviceVersion = "1.0.0"

func main() {
	cfg, err := config.Load("marketplace")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("connected to PostgreSQL")

	cache, err := redisClient.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer cache.Close()
	logger.Info("connected to Redis")

	// Scoring cores
	scorer := recommend.NewScorer(cfg.Scoring.MaxDistanceKm, cfg.Scoring.CurrencySymbol, cfg.Scoring.RecommendThreshold)
	detector := fraud.NewDetector(cfg.Fraud.HighValuePrice, cfg.Fraud.NewAccountDays)
	matcher := geo.NewMatcher(geo.NewDefaultLookup())

	// Services and handlers
	recommendHandler := recommend.NewHandler(recommend.NewService(recommend.NewRepository(db, cache), scorer))
	trustHandler := trust.NewHandler(trust.NewService(trust.NewRepository(db)))
	fraudHandler := fraud.NewHandler(fraud.NewService(fraud.NewRepository(db), detector))
	geoHandler := geo.NewHandler(geo.NewService(geo.NewRepository(db), matcher))

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))
	router.Use(middleware.SecurityHeaders())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.CorrelationIDHeader}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", common.HealthCheck(cfg.Server.ServiceName, serviceVersion, map[string]func() error{
		"postgres": func() error { return db.Ping(context.Background()) },
		"redis":    func() error { return cache.Ping(context.Background()).Err() },
	}))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(requestTimeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))
	{
		api.GET("/listings", recommendHandler.ListListings)
		api.GET("/listings/:listing_id/fraud-report", fraudHandler.GetFraudReport)

		api.POST("/feedback", trustHandler.SubmitFeedback)
		api.POST("/feedback/:feedback_id/verify", trustHandler.VerifyFeedback)
		api.POST("/feedback/:feedback_id/helpful", trustHandler.MarkHelpful)

		api.GET("/sellers/nearby", geoHandler.GetNearbySellers)
		api.GET("/sellers/:seller_id/trust", trustHandler.GetSellerTrust)
		api.GET("/sellers/:seller_id/reviews", trustHandler.GetSellerReviews)
	}

	addr := ":" + cfg.Server.Port
	logger.Info("marketplace service starting", zap.String("port", cfg.Server.Port))
	if err := router.Run(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func requestTimeout(d time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(d),
		timeout.WithHandler(func(c *gin.Context) { c.Next() }),
		timeout.WithResponse(func(c *gin.Context) {
			common.ErrorResponse(c, http.StatusRequestTimeout, "request timed out")
		}),
	)
}
