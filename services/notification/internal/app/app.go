package internal

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tiktok-shop/pkg/config"
	"tiktok-shop/pkg/jwt"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/middleware"
	"tiktok-shop/pkg/queue"
	notificationHTTP "tiktok-shop/services/notification/internal/controller/http"
	"tiktok-shop/services/notification/internal/repo/persistent"
	"tiktok-shop/services/notification/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	_ "tiktok-shop/services/notification/docs" // Swagger docs
)

// Run serves the inbox API and consumes ledger events until ctx is cancelled
// or either side fails.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger, redisClient *redis.Client, queueClient *queue.Client) error {
	jwtService := jwt.NewService(cfg.JWTSecret)

	notificationRepo := persistent.NewNotificationRepository(redisClient)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, log)
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, jwtService, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	// WebSocket clients authenticate with ?token=
	api.GET("/notifications/ws", notificationHandler.StreamNotifications)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))
	{
		protected.GET("/notifications", notificationHandler.GetNotifications)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Notification service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.Info("Starting ledger event consumer...")
		return queueClient.Consume(gctx, notificationUseCase.HandleEvent)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down notification service...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
