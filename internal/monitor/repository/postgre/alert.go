package postgres

import (
	"context"
	"time"

	"mediawatch-srv/internal/monitor/repository"

	"github.com/friendsofgo/errors"
)

// insertChunkSize bounds the number of rows per INSERT statement.
const insertChunkSize = 100

func (r *implAlertRepository) BulkInsert(ctx context.Context, opts repository.BulkInsertOptions) error {
	if len(opts.Alerts) == 0 {
		return nil
	}

	persistedAt := time.Now().UTC()
	rows := make([]alertModel, len(opts.Alerts))
	for i, alert := range opts.Alerts {
		rows[i] = newAlertModel(opts.TenantID, alert, persistedAt)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(rows, insertChunkSize).Error; err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.BulkInsert: %v", err)
		return errors.Wrap(err, "bulk insert monitoring alerts")
	}
	return nil
}
