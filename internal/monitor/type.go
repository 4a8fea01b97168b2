package monitor

// RunSummary reports the outcome of one monitoring run. AlertsDetected counts
// alerts the run attempted to persist; it reflects detection, not confirmed
// durability.
type RunSummary struct {
	Started           bool `json:"started"`
	EntitiesMonitored int  `json:"entities_monitored"`
	AlertsDetected    int  `json:"alerts_detected"`
}
