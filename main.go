package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partidas-service/config"
	"partidas-service/directory"
	"partidas-service/events"
	"partidas-service/handlers"
	"partidas-service/models"
	"partidas-service/repository"
	"partidas-service/services"
	"partidas-service/utils"
	"partidas-service/workers"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	config.SetupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo repository.PartidaRepository
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("STORAGE=memory: partidas are not persisted")
		repo = repository.NewMemoryPartidaRepository()
	default:
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			log.Fatal("failed to connect to database:", err)
		}
		if err := db.AutoMigrate(&models.Partida{}); err != nil {
			log.Fatal("failed to migrate database:", err)
		}
		repo = repository.NewGormPartidaRepository(db)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NatsURL != "" {
		np, err := events.ConnectNATS(cfg.NatsURL, cfg.NatsToken, cfg.NatsSubject)
		if err != nil {
			log.Fatalf("unable to connect to NATS: %v", err)
		}
		defer np.Close()
		publisher = np
		log.Infof("NATS connection established, publishing on %s", np.Subject)
	}

	var dir directory.Directory = directory.NewMemoryDirectory()
	if cfg.DirectoryURL != "" {
		hd, err := directory.NewHTTPDirectory(cfg.DirectoryURL, cfg.DirectoryToken)
		if err != nil {
			log.Fatalf("invalid directory client: %v", err)
		}
		dir = hd
	} else {
		log.Warn("DIRECTORY_URL not set: /ganadoresDeJuego and /partidasGanadas will return empty lists")
	}

	if cfg.SnapshotBucket != "" {
		store, err := utils.NewObjectStore(ctx, utils.ObjectStoreConfig{
			AccountID:       cfg.R2AccountID,
			Endpoint:        cfg.S3Endpoint,
			Bucket:          cfg.SnapshotBucket,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessSecret,
		})
		if err != nil {
			log.Fatalf("failed to initialize object store: %v", err)
		}
		snapshots := workers.NewSnapshotWorker(repo, store, cfg.AppName, cfg.SnapshotInterval)
		if err := snapshots.Start(ctx); err != nil {
			log.Fatalf("failed to start snapshot worker: %v", err)
		}
		defer snapshots.Stop()
	}

	partidaService := services.NewPartidaService(repo, publisher)
	queryService := services.NewPartidaQueryService(repo, dir)
	handler := handlers.NewPartidaHandler(cfg.AppName, partidaService, queryService)

	app := handlers.NewApp(handlers.AppOptions{
		AppName:        cfg.AppName,
		AllowedOrigins: cfg.AllowedOrigins,
		GatewayToken:   cfg.GatewayToken,
	}, handler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorf("Server error: %v", err)
			stop()
		}
	}()
	log.Infof("%s running on :%s (storage=%s)", cfg.AppName, cfg.Port, cfg.Storage)
	if cfg.GatewayToken != "" {
		log.Info("GatewayAuthMiddleware enforced: requests must carry the gateway token")
	}

	<-ctx.Done()
	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(15 * time.Second); err != nil {
		log.Errorf("shutdown failed: %v", err)
	}
}
