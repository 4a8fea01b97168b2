package monitor

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// RunMonitoring executes one full monitoring pass for a tenant: loads
	// configuration and the active contact set, runs every enabled detector
	// batch by batch and persists the alerts that were produced.
	RunMonitoring(ctx context.Context, tenantID string) (RunSummary, error)
}
