package usecase

import (
	"context"
	"time"

	"mediawatch-srv/internal/monitor"
	"mediawatch-srv/internal/monitor/repository"
	pkgLog "mediawatch-srv/pkg/log"
)

const (
	defaultBatchSize       = 10
	defaultInterBatchDelay = 2 * time.Second
)

// Config tunes the batch scheduler. Zero values fall back to defaults.
type Config struct {
	// BatchSize is how many contacts are probed concurrently per chunk.
	BatchSize int
	// InterBatchDelay is the pause between chunks, bounding the outbound
	// request rate to any one external host.
	InterBatchDelay time.Duration
}

type usecase struct {
	l           pkgLog.Logger
	configRepo  repository.ConfigRepository
	contactRepo repository.ContactRepository
	alertRepo   repository.AlertRepository
	registry    Registry

	batchSize  int
	batchDelay time.Duration

	// sleep is injectable so tests can count inter-batch pauses without
	// waiting them out.
	sleep func(ctx context.Context, d time.Duration)
}

func New(
	l pkgLog.Logger,
	cfg Config,
	configRepo repository.ConfigRepository,
	contactRepo repository.ContactRepository,
	alertRepo repository.AlertRepository,
	registry Registry,
) monitor.UseCase {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.InterBatchDelay <= 0 {
		cfg.InterBatchDelay = defaultInterBatchDelay
	}
	return &usecase{
		l:           l,
		configRepo:  configRepo,
		contactRepo: contactRepo,
		alertRepo:   alertRepo,
		registry:    registry,
		batchSize:   cfg.BatchSize,
		batchDelay:  cfg.InterBatchDelay,
		sleep:       sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
