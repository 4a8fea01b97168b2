package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"mediawatch-srv/internal/model"
)

// newAlertID generates a globally unique alert id from the emission time and
// a random suffix. No global counter is involved.
func newAlertID() string {
	ts := time.Now().UTC().Format("20060102150405")
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("alrt-%s-%d", ts, time.Now().UnixNano()%100000)
	}
	return fmt.Sprintf("alrt-%s-%s", ts, hex.EncodeToString(buf))
}

// newAlert assembles an alert from a triggering finding. The message must be
// a pure function of its inputs; DetectedAt is the only non-deterministic
// field besides the id.
func newAlert(contactID string, t model.AlertType, f model.Finding, message, previousValue string) model.MonitoringAlert {
	return model.MonitoringAlert{
		AlertID:         newAlertID(),
		ContactID:       contactID,
		AlertType:       t,
		AlertSeverity:   model.SeverityFor(t, f.Source),
		Message:         message,
		PreviousValue:   previousValue,
		NewValue:        f.NewValue,
		DetectedAt:      time.Now().UTC(),
		ConfidenceScore: f.Confidence,
		Source:          f.Source,
	}
}
