package usecase

import (
	"context"
	"time"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/monitor"
	"mediawatch-srv/internal/monitor/repository"
)

func (uc *usecase) RunMonitoring(ctx context.Context, tenantID string) (monitor.RunSummary, error) {
	if tenantID == "" {
		return monitor.RunSummary{}, monitor.ErrTenantRequired
	}

	start := time.Now()
	cfg := uc.loadConfig(ctx, tenantID)

	contacts, err := uc.contactRepo.ListActiveVerified(ctx, tenantID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.RunMonitoring.ListActiveVerified: %v", err)
		contacts = nil
	}
	if len(contacts) == 0 {
		uc.l.Infof(ctx, "monitoring run for tenant %s skipped: no active verified contacts", tenantID)
		return monitor.RunSummary{Started: false, EntitiesMonitored: 0}, nil
	}

	detectors, sweeps := uc.registry.enabled(cfg)

	alerts := uc.runBatched(ctx, cfg, contacts, detectors)

	for _, sw := range sweeps {
		sweepAlerts, err := sw.sweep(ctx, cfg)
		if err != nil {
			uc.l.Warnf(ctx, "internal.monitor.usecase.RunMonitoring: %s sweep failed: %v", sw.alertType(), err)
			continue
		}
		alerts = append(alerts, sweepAlerts...)
	}

	if len(alerts) > 0 {
		opts := repository.BulkInsertOptions{TenantID: tenantID, Alerts: alerts}
		if err := uc.alertRepo.BulkInsert(ctx, opts); err != nil {
			// Best effort: a monitoring run's value is in detection, not
			// exactly-once delivery. The summary still reports the count
			// the run attempted to persist.
			uc.l.Errorf(ctx, "internal.monitor.usecase.RunMonitoring.BulkInsert: %v", err)
		}
	}

	uc.l.Infof(ctx, "monitoring run for tenant %s finished: %d contacts, %d alerts in %v",
		tenantID, len(contacts), len(alerts), time.Since(start))

	return monitor.RunSummary{
		Started:           true,
		EntitiesMonitored: len(contacts),
		AlertsDetected:    len(alerts),
	}, nil
}

// loadConfig substitutes the built-in default configuration on any lookup
// error or missing record. Config absence must never block a run.
func (uc *usecase) loadConfig(ctx context.Context, tenantID string) model.MonitoringConfig {
	cfg, err := uc.configRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if err != repository.ErrNotFound {
			uc.l.Warnf(ctx, "internal.monitor.usecase.loadConfig: %v, falling back to default config", err)
		}
		return model.DefaultConfig(tenantID)
	}
	cfg.TenantID = tenantID
	return cfg
}
