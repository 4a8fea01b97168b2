package usecase

import (
	"context"
	"fmt"
	"time"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/probe"
	pkgLog "mediawatch-srv/pkg/log"
)

// contentPublishedDetector alerts when the content index attributes recently
// published items to the contact.
type contentPublishedDetector struct {
	l           pkgLog.Logger
	publication probe.Prober
	timeout     time.Duration
}

func (d *contentPublishedDetector) alertType() model.AlertType {
	return model.AlertTypeContentPublished
}

func (d *contentPublishedDetector) detect(ctx context.Context, contact model.Contact, cfg model.MonitoringConfig) ([]model.MonitoringAlert, error) {
	if contact.Name == "" {
		return nil, nil
	}

	probeCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	finding, err := d.publication.Probe(probeCtx, contact)
	if err != nil {
		d.l.Debugf(ctx, "internal.monitor.usecase.contentPublishedDetector.detect: index probe for contact %s: %v",
			contact.ID, err)
		return nil, nil
	}
	if !finding.Changed || finding.Confidence < cfg.ThresholdFor(model.AlertTypeContentPublished) {
		return nil, nil
	}

	message := contentPublishedMessage(contact.Name, finding.Count, finding.NewValue)
	alert := newAlert(contact.ID, model.AlertTypeContentPublished, finding, message, "")
	return []model.MonitoringAlert{alert}, nil
}

func contentPublishedMessage(name string, count int, latest string) string {
	if latest == "" {
		return fmt.Sprintf("%s published %d new piece(s) recently", name, count)
	}
	return fmt.Sprintf("%s published %d new piece(s) recently, latest: %s", name, count, latest)
}
