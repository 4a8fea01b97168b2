package repository

import "mediawatch-srv/internal/model"

// BulkInsertOptions contains options for persisting a run's alerts.
// TenantID is stamped onto every record together with a server timestamp.
type BulkInsertOptions struct {
	TenantID string
	Alerts   []model.MonitoringAlert
}
