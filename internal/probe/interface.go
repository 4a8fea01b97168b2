package probe

import (
	"context"

	"mediawatch-srv/internal/model"
)

// Prober performs one external lookup for one contact and returns a typed,
// confidence-scored finding or "no signal" (Changed=false). Probes are
// side-effect-free beyond the network call.
//
//go:generate mockery --name Prober
type Prober interface {
	Name() string
	Probe(ctx context.Context, contact model.Contact) (model.Finding, error)
}

// Discoverer performs one entity-independent lookup listing publishing
// organizations currently visible in an external directory.
//
//go:generate mockery --name Discoverer
type Discoverer interface {
	Name() string
	Discover(ctx context.Context) ([]string, error)
}
