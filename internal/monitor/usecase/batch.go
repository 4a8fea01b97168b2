package usecase

import (
	"context"
	"sync"

	"mediawatch-srv/internal/model"
)

// runBatched partitions contacts into consecutive chunks of batchSize and
// fans every contact×detector invocation of a chunk out concurrently. Each
// goroutine writes only its own result slot; the coordinator appends to the
// accumulator after the whole chunk has settled, so no further
// synchronization is needed. A per-invocation error or panic contributes
// zero alerts and never aborts the chunk or the run. Chunks run strictly
// sequentially with a pause in between except after the last one.
func (uc *usecase) runBatched(ctx context.Context, cfg model.MonitoringConfig, contacts []model.Contact, detectors []detector) []model.MonitoringAlert {
	var collected []model.MonitoringAlert
	if len(detectors) == 0 {
		return collected
	}

	for start := 0; start < len(contacts); start += uc.batchSize {
		end := start + uc.batchSize
		if end > len(contacts) {
			end = len(contacts)
		}
		batch := contacts[start:end]

		slots := make([][]model.MonitoringAlert, len(batch)*len(detectors))
		var wg sync.WaitGroup

		for i, contact := range batch {
			for j, det := range detectors {
				wg.Add(1)
				go func(slot int, c model.Contact, det detector) {
					defer wg.Done()
					defer func() {
						if r := recover(); r != nil {
							uc.l.Errorf(ctx, "internal.monitor.usecase.runBatched: %s detector panicked for contact %s: %v",
								det.alertType(), c.ID, r)
						}
					}()

					alerts, err := det.detect(ctx, c, cfg)
					if err != nil {
						uc.l.Warnf(ctx, "internal.monitor.usecase.runBatched: %s detector failed for contact %s: %v",
							det.alertType(), c.ID, err)
						return
					}
					slots[slot] = alerts
				}(i*len(detectors)+j, contact, det)
			}
		}

		wg.Wait()
		for _, alerts := range slots {
			collected = append(collected, alerts...)
		}

		if end < len(contacts) {
			uc.sleep(ctx, uc.batchDelay)
		}
	}

	return collected
}
