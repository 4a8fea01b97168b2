package usecase

import (
	"context"
	"time"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/monitor/repository"
	"mediawatch-srv/internal/probe"
	pkgLog "mediawatch-srv/pkg/log"
)

// defaultProbeTimeout bounds every probe call so one slow external endpoint
// cannot stall a batch beyond its own timeout.
const defaultProbeTimeout = 10 * time.Second

// detector turns probe output into alerts for one contact, gated by the
// tenant's confidence threshold for its alert type.
type detector interface {
	alertType() model.AlertType
	detect(ctx context.Context, contact model.Contact, cfg model.MonitoringConfig) ([]model.MonitoringAlert, error)
}

// sweepDetector runs once per monitoring run instead of once per contact.
type sweepDetector interface {
	alertType() model.AlertType
	sweep(ctx context.Context, cfg model.MonitoringConfig) ([]model.MonitoringAlert, error)
}

// Probes bundles the signal probes the registry wires into detectors.
type Probes struct {
	Profile      probe.Prober
	Bio          probe.Prober
	Reachability probe.Prober
	Activity     probe.Prober
	Publication  probe.Prober
	Discovery    probe.Discoverer
}

// Registry is the static set of detector implementations keyed by alert
// type. Adding a new alert type means adding one implementation and one
// entry here, not branching inside the orchestrator.
type Registry struct {
	perContact map[model.AlertType]detector
	sweeps     map[model.AlertType]sweepDetector
}

// RegistryConfig tunes detector behavior.
type RegistryConfig struct {
	ProbeTimeout time.Duration
}

func NewRegistry(l pkgLog.Logger, cfg RegistryConfig, probes Probes, outletRepo repository.OutletRepository) Registry {
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}
	timeout := cfg.ProbeTimeout

	return Registry{
		perContact: map[model.AlertType]detector{
			model.AlertTypeJobChange: &jobChangeDetector{
				l: l, profile: probes.Profile, bio: probes.Bio, timeout: timeout,
			},
			model.AlertTypeContactUpdate: &contactUpdateDetector{
				l: l, reachability: probes.Reachability, timeout: timeout,
			},
			model.AlertTypeSocialActivity: &socialActivityDetector{
				l: l, activity: probes.Activity, timeout: timeout,
			},
			model.AlertTypeContentPublished: &contentPublishedDetector{
				l: l, publication: probes.Publication, timeout: timeout,
			},
		},
		sweeps: map[model.AlertType]sweepDetector{
			model.AlertTypeNewOutlet: &newOutletDetector{
				l: l, discovery: probes.Discovery, outlets: outletRepo, timeout: timeout,
			},
		},
	}
}

// enabled resolves the tenant's enabled alert types against the registry.
// Types without a registered detector are ignored.
func (r Registry) enabled(cfg model.MonitoringConfig) ([]detector, []sweepDetector) {
	var detectors []detector
	var sweeps []sweepDetector
	for _, t := range cfg.EnabledAlertTypes {
		if d, ok := r.perContact[t]; ok {
			detectors = append(detectors, d)
		}
		if s, ok := r.sweeps[t]; ok {
			sweeps = append(sweeps, s)
		}
	}
	return detectors, sweeps
}
