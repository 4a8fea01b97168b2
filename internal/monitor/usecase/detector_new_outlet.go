package usecase

import (
	"context"
	"fmt"
	"time"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/monitor/repository"
	"mediawatch-srv/internal/probe"
	pkgLog "mediawatch-srv/pkg/log"
)

// discoveryConfidence is a moderate fixed constant: directory listings are
// reliable but "new to this tenant" is only as good as the known-outlet set.
const discoveryConfidence = 75

// newOutletDetector is entity-independent: it runs once per monitoring run
// and emits one alert per organization not yet known to the tenant, under
// the sentinel contact id.
type newOutletDetector struct {
	l         pkgLog.Logger
	discovery probe.Discoverer
	outlets   repository.OutletRepository
	timeout   time.Duration
}

func (d *newOutletDetector) alertType() model.AlertType {
	return model.AlertTypeNewOutlet
}

func (d *newOutletDetector) sweep(ctx context.Context, cfg model.MonitoringConfig) ([]model.MonitoringAlert, error) {
	probeCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	names, err := d.discovery.Discover(probeCtx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	unknown, err := d.outlets.FilterUnknown(ctx, cfg.TenantID, names)
	if err != nil {
		return nil, err
	}

	threshold := cfg.ThresholdFor(model.AlertTypeNewOutlet)
	if discoveryConfidence < threshold {
		return nil, nil
	}

	alerts := make([]model.MonitoringAlert, 0, len(unknown))
	for _, name := range unknown {
		finding := model.Finding{
			Changed:    true,
			NewValue:   name,
			Confidence: discoveryConfidence,
			Source:     model.SourceOutletDirectory,
		}
		alert := newAlert(model.SystemContactID, model.AlertTypeNewOutlet, finding, newOutletMessage(name), "")
		alerts = append(alerts, alert)
	}

	if len(unknown) > 0 {
		if err := d.outlets.MarkKnown(ctx, cfg.TenantID, unknown); err != nil {
			// Alerts still stand; worst case the same outlet re-alerts next run.
			d.l.Warnf(ctx, "internal.monitor.usecase.newOutletDetector.sweep.MarkKnown: %v", err)
		}
	}

	return alerts, nil
}

func newOutletMessage(name string) string {
	return fmt.Sprintf("New outlet discovered: %s", name)
}
