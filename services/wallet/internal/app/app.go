package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tiktok-shop/pkg/cache"
	"tiktok-shop/pkg/config"
	"tiktok-shop/pkg/database"
	"tiktok-shop/pkg/jwt"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/middleware"
	"tiktok-shop/pkg/queue"
	"tiktok-shop/pkg/s3"
	walletHTTP "tiktok-shop/services/wallet/internal/controller/http"
	"tiktok-shop/services/wallet/internal/repo/persistent"
	"tiktok-shop/services/wallet/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "tiktok-shop/services/wallet/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithLevel(cfg.LogLevel)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v (statement export disabled)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	if err := walletHTTP.RegisterValidators(); err != nil {
		return nil, err
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Optional clients stay nil interfaces when unavailable
	var publisher queue.Publisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}
	var storage usecase.ObjectStorage
	if a.s3Client != nil {
		storage = a.s3Client
	}
	var limiter redis.Cmdable
	if a.redisClient != nil {
		limiter = a.redisClient
	}

	// Initialize repositories
	ledgerRepo := persistent.NewLedgerRepository(a.db)

	// Initialize use cases
	walletUseCase := usecase.NewWalletUseCase(ledgerRepo, publisher, a.log)
	withdrawalUseCase := usecase.NewWithdrawalUseCase(ledgerRepo, publisher, a.log)
	bankingUseCase := usecase.NewBankingUseCase(ledgerRepo, a.log)
	statementUseCase := usecase.NewStatementUseCase(ledgerRepo, storage, a.log)

	// Initialize HTTP handlers
	walletHandler := walletHTTP.NewWalletHandler(walletUseCase, a.log)
	withdrawalHandler := walletHTTP.NewWithdrawalHandler(withdrawalUseCase, statementUseCase, a.log)
	bankingHandler := walletHTTP.NewBankingHandler(bankingUseCase, a.log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
	api.Use(middleware.AuthMiddleware(a.jwtService))
	api.Use(middleware.RateLimitMiddleware(limiter, a.cfg.RateLimitPerMinute, time.Minute))
	{
		api.GET("/wallet", walletHandler.GetWallet)
		api.GET("/wallet/transactions", walletHandler.GetTransactions)
	}

	seller := api.Group("", middleware.RequireRoles(middleware.RoleSeller))
	{
		seller.GET("/withdrawals", withdrawalHandler.ListWithdrawals)
		seller.POST("/withdrawals", withdrawalHandler.CreateWithdrawal)
		seller.GET("/banking", bankingHandler.GetBanking)
		seller.PUT("/banking", bankingHandler.SaveBanking)
	}

	admin := api.Group("/admin", middleware.RequireRoles(middleware.RoleAdmin))
	{
		admin.GET("/withdrawals/pending", withdrawalHandler.ListPendingWithdrawals)
		admin.PATCH("/withdrawals/:id/approve", withdrawalHandler.ApproveWithdrawal)
		admin.PATCH("/withdrawals/:id/reject", withdrawalHandler.RejectWithdrawal)
		admin.POST("/withdrawals/statements", withdrawalHandler.ExportStatement)
		admin.POST("/wallets/:user_id/adjust", walletHandler.AdjustWallet)
	}

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Wallet service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down wallet service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Wallet service exited")
	_ = a.log.Sync()
	return nil
}
