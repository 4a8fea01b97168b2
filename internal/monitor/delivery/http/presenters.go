package http

import "mediawatch-srv/internal/monitor"

type runResp struct {
	Started           bool `json:"started"`
	EntitiesMonitored int  `json:"entities_monitored"`
	AlertsDetected    int  `json:"alerts_detected"`
}

func newRunResp(s monitor.RunSummary) runResp {
	return runResp{
		Started:           s.Started,
		EntitiesMonitored: s.EntitiesMonitored,
		AlertsDetected:    s.AlertsDetected,
	}
}
