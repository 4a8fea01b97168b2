package usecase

import (
	"context"
	"fmt"
	"time"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/probe"
	pkgLog "mediawatch-srv/pkg/log"
)

// contactUpdateDetector flags contact addresses whose mail domain no longer
// resolves. Lookup failures fail open: false negatives are preferred over
// false positives because this alert is user-facing and looks irreversible.
type contactUpdateDetector struct {
	l            pkgLog.Logger
	reachability probe.Prober
	timeout      time.Duration
}

func (d *contactUpdateDetector) alertType() model.AlertType {
	return model.AlertTypeContactUpdate
}

func (d *contactUpdateDetector) detect(ctx context.Context, contact model.Contact, cfg model.MonitoringConfig) ([]model.MonitoringAlert, error) {
	if contact.Email == "" {
		return nil, nil
	}

	probeCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	finding, err := d.reachability.Probe(probeCtx, contact)
	if err != nil {
		// Fail open: an inconclusive lookup means "assume still valid".
		d.l.Debugf(ctx, "internal.monitor.usecase.contactUpdateDetector.detect: lookup for contact %s inconclusive: %v",
			contact.ID, err)
		return nil, nil
	}
	if !finding.Changed || finding.Confidence < cfg.ThresholdFor(model.AlertTypeContactUpdate) {
		return nil, nil
	}

	message := contactUpdateMessage(contact.Name, contact.Email)
	alert := newAlert(contact.ID, model.AlertTypeContactUpdate, finding, message, "valid")
	return []model.MonitoringAlert{alert}, nil
}

func contactUpdateMessage(name, email string) string {
	return fmt.Sprintf("%s's email address %s no longer appears to be valid", name, email)
}
