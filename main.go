package main

import (
	"fmt"
	"os"

	account "lot-market/internal/accountService"
	catalog "lot-market/internal/catalogService"
	"lot-market/internal/config"
	messaging "lot-market/internal/messagingService"
	profile "lot-market/internal/profileService"
	"lot-market/internal/repository"
	"lot-market/internal/server"
	"lot-market/internal/storage"
	sweeper "lot-market/internal/sweeperService"
	"lot-market/internal/telegram"
	handler "lot-market/services/market/handler"
	"lot-market/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DBFile), &gorm.Config{TranslateError: true})
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{"db_file": cfg.DBFile, "error": err.Error()})
	}

	repo, err := repository.NewGormRepo(db)
	if err != nil {
		utils.Fatal("failed to migrate schema", map[string]any{"error": err.Error()})
	}

	store, err := storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		utils.Fatal("failed to init object store", map[string]any{"error": err.Error()})
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	accountSvc := account.NewAccountService(repo, cfg.JWTSecret)
	// Derive the admin credential before serving; /health stays 503 until done.
	if err := accountSvc.Bootstrap(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		utils.Fatal("admin bootstrap failed", map[string]any{"error": err.Error()})
	}
	adminUser, err := repo.GetUserByEmail(cfg.AdminEmail)
	if err != nil {
		utils.Fatal("admin lookup failed", map[string]any{"error": err.Error()})
	}

	catalogSvc := catalog.NewCatalogService(repo, repo, repo, store, catalog.Policy{
		FreeLotQuota:     cfg.FreeLotQuota,
		PremiumLotQuota:  cfg.PremiumLotQuota,
		ListDefaultLimit: cfg.ListDefaultLimit,
		StrictBids:       cfg.StrictBids,
	})
	messagingSvc := messaging.NewMessagingService(repo, repo)
	profileSvc := profile.NewProfileService(repo, repo, repo, repo)
	sweeperSvc := sweeper.NewSweeperService(repo, store)
	bridge := telegram.NewBridge(accountSvc, cfg.BotToken)

	router := server.SetupRouter(server.Deps{
		Lots:     handler.NewLotHandler(catalogSvc),
		Auth:     handler.NewAuthHandler(accountSvc),
		Messages: handler.NewMessageHandler(messagingSvc),
		Profile:  handler.NewProfileHandler(profileSvc),
		Admin:    handler.NewAdminHandler(catalogSvc, func() string { return adminUser.UserID }),
		Cron:     handler.NewCronHandler(sweeperSvc),
		Telegram: handler.NewTelegramHandler(bridge),

		Readiness:   accountSvc,
		Verifier:    accountSvc,
		AdminSecret: cfg.AdminSecret,
		CronSecret:  cfg.CronSecret,
		Redis:       rdb,
		UploadRoot:  store.Root(),
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting marketplace server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
