package postgres

import (
	"context"

	"mediawatch-srv/internal/model"
	"mediawatch-srv/internal/monitor/repository"

	"gorm.io/gorm"
)

func (r *implConfigRepository) GetByTenant(ctx context.Context, tenantID string) (model.MonitoringConfig, error) {
	var row monitoringConfigModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return model.MonitoringConfig{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.GetByTenant: %v", err)
		return model.MonitoringConfig{}, err
	}

	cfg, err := row.toDomain()
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.GetByTenant.toDomain: %v", err)
		return model.MonitoringConfig{}, err
	}
	return cfg, nil
}
