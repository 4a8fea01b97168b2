package postgres

import (
	"context"

	"mediawatch-srv/internal/model"
)

func (r *implContactRepository) ListActiveVerified(ctx context.Context, tenantID string) ([]model.Contact, error) {
	var rows []contactModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ? AND is_verified = ?", tenantID, true, true).
		Order("id").
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListActiveVerified: %v", err)
		return nil, err
	}

	contacts := make([]model.Contact, len(rows))
	for i, row := range rows {
		contacts[i] = row.toDomain()
	}
	return contacts, nil
}
