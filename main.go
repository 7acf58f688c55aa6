package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aurumx/goldmarket/src/config"
	"github.com/aurumx/goldmarket/src/logger"
	"github.com/aurumx/goldmarket/src/storage"

	assetHD "github.com/aurumx/goldmarket/src/asset/delivery/http"
	assetdomain "github.com/aurumx/goldmarket/src/asset/domain"
	assetRepo "github.com/aurumx/goldmarket/src/asset/repository"
	asset "github.com/aurumx/goldmarket/src/asset/usecase"

	tokenHD "github.com/aurumx/goldmarket/src/token/delivery/http"
	tokendomain "github.com/aurumx/goldmarket/src/token/domain"
	tokenRepo "github.com/aurumx/goldmarket/src/token/repository"
	token "github.com/aurumx/goldmarket/src/token/usecase"

	marketHD "github.com/aurumx/goldmarket/src/marketplace/delivery/http"
	assetAdapter "github.com/aurumx/goldmarket/src/marketplace/adapter/asset"
	tokenAdapter "github.com/aurumx/goldmarket/src/marketplace/adapter/token"
	marketplacedomain "github.com/aurumx/goldmarket/src/marketplace/domain"
	marketRepo "github.com/aurumx/goldmarket/src/marketplace/repository"
	marketplace "github.com/aurumx/goldmarket/src/marketplace/usecase"

	poolHD "github.com/aurumx/goldmarket/src/swappool/delivery/http"
	poolTokenAdapter "github.com/aurumx/goldmarket/src/swappool/adapter/token"
	pooldomain "github.com/aurumx/goldmarket/src/swappool/domain"
	poolRepo "github.com/aurumx/goldmarket/src/swappool/repository"
	swappool "github.com/aurumx/goldmarket/src/swappool/usecase"

	audit "github.com/aurumx/goldmarket/src/audit/usecase"

	_ "github.com/aurumx/goldmarket/docs" // Swagger docs
	_ "github.com/lib/pq"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	logg := logger.New(cfg.Env)

	// --- Storage ---
	var (
		tx          storage.TxManager
		ledgerStore tokendomain.LedgerRepository
		assetStore  assetdomain.AssetRepository
		listStore   marketplacedomain.ListingRepository
		poolStore   pooldomain.PoolRepository
	)

	if cfg.Env == "local" {
		logg.Infof("ENV=local: running on the in-memory store")
		ledgerMem := tokenRepo.NewMemoryLedgerRepo()
		assetMem := assetRepo.NewMemoryAssetRepo()
		listMem := marketRepo.NewMemoryListingRepo()
		poolMem := poolRepo.NewMemoryPoolRepo()
		tx = storage.NewMemoryManager(ledgerMem, assetMem, listMem, poolMem)
		ledgerStore, assetStore, listStore, poolStore = ledgerMem, assetMem, listMem, poolMem
	} else {
		logg.Infof("Connecting to database: %s", cfg.DatabaseURL)
		gormDB, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Warn),
		})
		if err != nil {
			logg.Fatalf("Failed to connect to database: %v", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			logg.Fatalf("Failed to get generic DB handle: %v", err)
		}
		defer sqlDB.Close()

		// Connection pool tuning
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(10 * time.Minute)

		tx = storage.NewGormManager(gormDB)
		ledgerStore = tokenRepo.NewLedgerRepo(gormDB, logg)
		assetStore = assetRepo.NewAssetRepo(gormDB, logg)
		listStore = marketRepo.NewListingRepo(gormDB, logg)
		poolStore = poolRepo.NewPoolRepo(gormDB, logg)
	}

	// --- Services ---
	eng := cfg.Engine

	tokenSvc := token.NewService(ledgerStore, tx, logg)
	assetSvc := asset.NewService(assetStore, tx, logg)

	marketSvc := marketplace.NewService(
		listStore,
		tokenAdapter.NewLedgerPort(tokenSvc),
		tx,
		eng.MarketplaceAccount,
		eng.FeeAccount,
		eng.FeePercent,
		logg,
	)
	marketSvc.RegisterRegistry(eng.RegistryRef, assetAdapter.NewRegistryPort(assetSvc))

	poolSvc := swappool.NewService(
		poolStore,
		poolTokenAdapter.NewLedgerPort(tokenSvc),
		tx,
		eng.PoolAccount,
		eng.SwapRate,
		logg,
	)

	// genesis supply goes to the deploying account
	if err := tokenSvc.InitGenesis(context.Background(), eng.DeployerAccount, eng.InitialSupply); err != nil {
		logg.Fatalf("genesis failed: %v", err)
	}

	// --- Conservation auditor ---
	auditSvc := audit.NewService(tokenSvc, logg)
	scheduler := cron.New()
	audit.Schedule(scheduler, auditSvc)
	scheduler.Start()
	defer scheduler.Stop()

	// --- Router ---
	r := gin.New()

	// Core middleware
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Writer.Header().Set("X-Request-Id", requestID)
		start := time.Now()
		c.Next()
		logg.Infof("%s %s status:%d duration:%s request_id:%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			requestID,
		)
	})

	// --- Healthcheck ---
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Swagger ---
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- API routes ---
	tokenHD.NewHandler(tokenSvc, logg).RegisterRoutes(r)
	assetHD.NewHandler(assetSvc, logg).RegisterRoutes(r)
	marketHD.NewHandler(marketSvc, logg).RegisterRoutes(r)
	poolHD.NewHandler(poolSvc, logg).RegisterRoutes(r)

	// --- Start server ---
	logg.Infof("Starting service on %s (env=%s)", cfg.ListenAddr, cfg.Env)
	logg.Infof("Swagger UI available at http://localhost%s/swagger/index.html", cfg.ListenAddr)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatalf("Server terminated unexpectedly: %v", err)
	}
}
