package usecase

import (
	"context"
	"fmt"
	"time"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/probe"
	pkgLog "mediawatch-srv/pkg/log"
)

// jobChangeDetector runs up to two independent probes: a profile-page scan
// and a bio-text scan. Each firing probe yields its own alert; the two are
// deliberately not merged.
type jobChangeDetector struct {
	l       pkgLog.Logger
	profile probe.Prober
	bio     probe.Prober
	timeout time.Duration
}

func (d *jobChangeDetector) alertType() model.AlertType {
	return model.AlertTypeJobChange
}

func (d *jobChangeDetector) detect(ctx context.Context, contact model.Contact, cfg model.MonitoringConfig) ([]model.MonitoringAlert, error) {
	threshold := cfg.ThresholdFor(model.AlertTypeJobChange)
	var alerts []model.MonitoringAlert

	if contact.ProfileURL != "" {
		if alert, ok := d.runProbe(ctx, d.profile, contact, threshold); ok {
			alerts = append(alerts, alert)
		}
	}
	if contact.SocialHandle != "" {
		if alert, ok := d.runProbe(ctx, d.bio, contact, threshold); ok {
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

func (d *jobChangeDetector) runProbe(ctx context.Context, p probe.Prober, contact model.Contact, threshold int) (model.MonitoringAlert, bool) {
	probeCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	finding, err := p.Probe(probeCtx, contact)
	if err != nil {
		d.l.Debugf(ctx, "internal.monitor.usecase.jobChangeDetector.runProbe: %s probe for contact %s: %v",
			p.Name(), contact.ID, err)
		return model.MonitoringAlert{}, false
	}
	if !finding.Changed || finding.Confidence < threshold {
		return model.MonitoringAlert{}, false
	}

	message := jobChangeMessage(contact.Name, finding.NewValue)
	return newAlert(contact.ID, model.AlertTypeJobChange, finding, message, contact.Outlet), true
}

// jobChangeMessage is a pure function of its inputs: identical contact and
// finding always produce an identical message.
func jobChangeMessage(name, newValue string) string {
	if newValue == "" {
		return fmt.Sprintf("%s may have changed jobs", name)
	}
	return fmt.Sprintf("%s may have changed jobs to %s", name, newValue)
}
