package model

// Frequency governs how often an external scheduler invokes a monitoring run.
// The monitoring core itself is stateless between runs.
type Frequency string

const (
	FrequencyHourly Frequency = "hourly"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// IsValid checks if the frequency is a known value.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly:
		return true
	default:
		return false
	}
}

// String returns the string representation of the frequency.
func (f Frequency) String() string {
	return string(f)
}

// defaultThresholds are substituted for enabled types missing a threshold
// entry. For social_activity the value is a post-count threshold, not a
// confidence score.
var defaultThresholds = map[AlertType]int{
	AlertTypeJobChange:      70,
	AlertTypeContactUpdate:  60,
	AlertTypeSocialActivity: 5,
}

// defaultThreshold is the fallback for types with no per-type default.
const defaultThreshold = 50

// MonitoringConfig holds the per-tenant settings controlling a run.
type MonitoringConfig struct {
	TenantID          string            `json:"tenant_id"`
	EnabledAlertTypes []AlertType       `json:"enabled_alert_types"`
	Frequency         Frequency         `json:"frequency"`
	Thresholds        map[AlertType]int `json:"thresholds"`
}

// ThresholdFor returns the configured threshold for an alert type,
// substituting a hard-coded default when the entry is missing.
func (c MonitoringConfig) ThresholdFor(t AlertType) int {
	if v, ok := c.Thresholds[t]; ok {
		return v
	}
	if v, ok := defaultThresholds[t]; ok {
		return v
	}
	return defaultThreshold
}

// IsEnabled reports whether the tenant wants the given alert type detected.
func (c MonitoringConfig) IsEnabled(t AlertType) bool {
	for _, enabled := range c.EnabledAlertTypes {
		if enabled == t {
			return true
		}
	}
	return false
}

// DefaultConfig is the built-in configuration used when the tenant has no
// stored config or the lookup fails. Config absence never blocks a run.
func DefaultConfig(tenantID string) MonitoringConfig {
	return MonitoringConfig{
		TenantID: tenantID,
		EnabledAlertTypes: []AlertType{
			AlertTypeJobChange,
			AlertTypeContactUpdate,
			AlertTypeSocialActivity,
			AlertTypeContentPublished,
		},
		Frequency: FrequencyDaily,
		Thresholds: map[AlertType]int{
			AlertTypeJobChange:      70,
			AlertTypeContactUpdate:  60,
			AlertTypeSocialActivity: 5,
		},
	}
}
