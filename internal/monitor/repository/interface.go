package repository

import (
	"context"
	"errors"

	"mediawatch-srv/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

//go:generate mockery --name ConfigRepository
type ConfigRepository interface {
	// GetByTenant returns the tenant's monitoring configuration.
	// Returns ErrNotFound when the tenant has no stored configuration.
	GetByTenant(ctx context.Context, tenantID string) (model.MonitoringConfig, error)
}

//go:generate mockery --name ContactRepository
type ContactRepository interface {
	// ListActiveVerified returns the contacts eligible for monitoring:
	// active and verified, scoped to the tenant.
	ListActiveVerified(ctx context.Context, tenantID string) ([]model.Contact, error)
}

//go:generate mockery --name AlertRepository
type AlertRepository interface {
	// BulkInsert appends alerts to the durable store. The monitoring core
	// treats this as fire-and-forget: failures are logged by the caller,
	// never retried here.
	BulkInsert(ctx context.Context, opts BulkInsertOptions) error
}

//go:generate mockery --name OutletRepository
type OutletRepository interface {
	// FilterUnknown returns the subset of names not yet known to the tenant.
	FilterUnknown(ctx context.Context, tenantID string, names []string) ([]string, error)
	// MarkKnown records names as seen so they are not re-alerted next run.
	MarkKnown(ctx context.Context, tenantID string, names []string) error
}
