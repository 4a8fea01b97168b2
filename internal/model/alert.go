package model

import "time"

// AlertType identifies the kind of change a detector looks for.
// This is a closed taxonomy; adding a type means adding a detector
// implementation and a registry entry.
type AlertType string

const (
	AlertTypeJobChange        AlertType = "job_change"
	AlertTypeContactUpdate    AlertType = "contact_update"
	AlertTypeSocialActivity   AlertType = "social_activity"
	AlertTypeContentPublished AlertType = "content_published"
	AlertTypeNewOutlet        AlertType = "new_outlet"
)

// IsValid checks if the alert type is part of the taxonomy.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeJobChange,
		AlertTypeContactUpdate,
		AlertTypeSocialActivity,
		AlertTypeContentPublished,
		AlertTypeNewOutlet:
		return true
	default:
		return false
	}
}

// String returns the string representation of the alert type.
func (t AlertType) String() string {
	return string(t)
}

// AlertSeverity is the fixed, non-configurable severity of an alert.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// String returns the string representation of the severity.
func (s AlertSeverity) String() string {
	return string(s)
}

// SeverityFor maps an alert type to its fixed severity. Job changes derived
// from the profile page rank high; the same signal from bio text alone ranks
// medium because the bio heuristic is weaker.
func SeverityFor(t AlertType, source string) AlertSeverity {
	switch t {
	case AlertTypeJobChange:
		if source == SourceProfilePage {
			return SeverityHigh
		}
		return SeverityMedium
	case AlertTypeContactUpdate, AlertTypeNewOutlet:
		return SeverityMedium
	case AlertTypeSocialActivity, AlertTypeContentPublished:
		return SeverityLow
	default:
		return SeverityLow
	}
}

// SystemContactID is the sentinel contact id for entity-independent alerts
// such as newly discovered outlets.
const SystemContactID = "system"

// MonitoringAlert is the unit persisted and surfaced to users. Alerts are
// written once and never updated in place; corrections arrive only as new
// alerts in a later run.
type MonitoringAlert struct {
	AlertID         string        `json:"alert_id"`
	TenantID        string        `json:"tenant_id"`
	ContactID       string        `json:"contact_id"`
	AlertType       AlertType     `json:"alert_type"`
	AlertSeverity   AlertSeverity `json:"alert_severity"`
	Message         string        `json:"alert_message"`
	PreviousValue   string        `json:"previous_value,omitempty"`
	NewValue        string        `json:"new_value,omitempty"`
	DetectedAt      time.Time     `json:"detected_at"`
	ConfidenceScore int           `json:"confidence_score"`
	Source          string        `json:"source"`
}
