package main

import (
	"context"
	"fmt"

	"mediawatch-srv/config"
	configPostgre "mediawatch-srv/config/postgre"
	configRedis "mediawatch-srv/config/redis"
	"mediawatch-srv/internal/httpserver"
	monitorRepoPostgre "mediawatch-srv/internal/monitor/repository/postgre"
	monitorRepoRedis "mediawatch-srv/internal/monitor/repository/redisrepo"
	monitorUC "mediawatch-srv/internal/monitor/usecase"
	"mediawatch-srv/internal/probe"
	"mediawatch-srv/pkg/doh"
	"mediawatch-srv/pkg/log"
	"mediawatch-srv/pkg/webclient"
)

// @title       MediaWatch Monitoring Service
// @description Contact change-detection and alerting engine
// @version     1.0
// @host        localhost:8082
// @schemes     http
// @BasePath    /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	db, err := configPostgre.Connect(ctx, logger, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(db)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if err := monitorRepoPostgre.Migrate(db); err != nil {
		logger.Error(ctx, "Failed to migrate monitoring tables: ", err)
		return
	}

	// Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// External probe transport
	web := webclient.New(logger, webclient.Config{
		UserAgent: cfg.Probe.UserAgent,
		Timeout:   cfg.Monitor.ProbeTimeout,
	})
	resolver := doh.New(logger, web, cfg.Probe.DoHEndpoint)

	// Repositories
	configRepo := monitorRepoPostgre.NewConfigRepository(logger, db)
	contactRepo := monitorRepoPostgre.NewContactRepository(logger, db)
	alertRepo := monitorRepoPostgre.NewAlertRepository(logger, db)
	outletRepo := monitorRepoRedis.NewOutletRepository(logger, redisClient)

	// Detector registry
	registry := monitorUC.NewRegistry(logger,
		monitorUC.RegistryConfig{ProbeTimeout: cfg.Monitor.ProbeTimeout},
		monitorUC.Probes{
			Profile:      probe.NewProfileProbe(logger, web),
			Bio:          probe.NewBioProbe(logger, web, cfg.Probe.BioURLTemplate),
			Reachability: probe.NewReachabilityProbe(logger, resolver),
			Activity:     probe.NewActivityProbe(logger, web, cfg.Probe.FeedURLTemplate),
			Publication:  probe.NewPublicationProbe(logger, web, cfg.Probe.ContentIndexURL),
			Discovery:    probe.NewDiscoveryProbe(logger, web, cfg.Probe.DiscoveryURL),
		},
		outletRepo,
	)

	// Monitoring usecase
	uc := monitorUC.New(logger,
		monitorUC.Config{
			BatchSize:       cfg.Monitor.BatchSize,
			InterBatchDelay: cfg.Monitor.InterBatchDelay,
		},
		configRepo, contactRepo, alertRepo, registry,
	)

	// HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:      cfg.Server.Port,
		Mode:      cfg.Server.Mode,
		MonitorUC: uc,
		DB:        db,
		Redis:     redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
