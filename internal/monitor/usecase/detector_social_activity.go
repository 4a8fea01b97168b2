package usecase

import (
	"context"
	"fmt"
	"time"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/probe"
	pkgLog "mediawatch-srv/pkg/log"
)

// socialActivityDetector compares the recent-post count against the tenant's
// activity threshold. For this type the configured threshold is a post count,
// not a confidence score; confidence is fixed by the probe since the signal
// is a direct count, not an inference.
type socialActivityDetector struct {
	l        pkgLog.Logger
	activity probe.Prober
	timeout  time.Duration
}

func (d *socialActivityDetector) alertType() model.AlertType {
	return model.AlertTypeSocialActivity
}

func (d *socialActivityDetector) detect(ctx context.Context, contact model.Contact, cfg model.MonitoringConfig) ([]model.MonitoringAlert, error) {
	if contact.SocialHandle == "" {
		return nil, nil
	}

	probeCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	finding, err := d.activity.Probe(probeCtx, contact)
	if err != nil {
		d.l.Debugf(ctx, "internal.monitor.usecase.socialActivityDetector.detect: feed probe for contact %s: %v",
			contact.ID, err)
		return nil, nil
	}
	if !finding.Changed || finding.Count < cfg.ThresholdFor(model.AlertTypeSocialActivity) {
		return nil, nil
	}

	message := socialActivityMessage(contact.Name, finding.Count)
	alert := newAlert(contact.ID, model.AlertTypeSocialActivity, finding, message, "")
	return []model.MonitoringAlert{alert}, nil
}

func socialActivityMessage(name string, count int) string {
	return fmt.Sprintf("%s has posted %d times in the last day", name, count)
}
