package postgres

import (
	"encoding/json"
	"time"

	"mediawatch-srv/internal/model"

	"github.com/friendsofgo/errors"
)

type monitoringConfigModel struct {
	TenantID          string `gorm:"primaryKey;column:tenant_id"`
	EnabledAlertTypes string `gorm:"column:enabled_alert_types;type:jsonb;not null;default:'[]'"`
	Frequency         string `gorm:"not null;default:'daily'"`
	Thresholds        string `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (monitoringConfigModel) TableName() string { return "monitoring_configs" }

func (m monitoringConfigModel) toDomain() (model.MonitoringConfig, error) {
	var enabled []model.AlertType
	if err := json.Unmarshal([]byte(m.EnabledAlertTypes), &enabled); err != nil {
		return model.MonitoringConfig{}, errors.Wrap(err, "decode enabled_alert_types")
	}
	thresholds := make(map[model.AlertType]int)
	if err := json.Unmarshal([]byte(m.Thresholds), &thresholds); err != nil {
		return model.MonitoringConfig{}, errors.Wrap(err, "decode thresholds")
	}
	return model.MonitoringConfig{
		TenantID:          m.TenantID,
		EnabledAlertTypes: enabled,
		Frequency:         model.Frequency(m.Frequency),
		Thresholds:        thresholds,
	}, nil
}

type contactModel struct {
	ID           string `gorm:"primaryKey"`
	TenantID     string `gorm:"index;not null"`
	Name         string `gorm:"not null"`
	Email        string
	ProfileURL   string
	SocialHandle string
	Outlet       string
	IsActive     bool `gorm:"index:idx_contacts_tenant_active_verified"`
	IsVerified   bool `gorm:"index:idx_contacts_tenant_active_verified"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (contactModel) TableName() string { return "contacts" }

func (m contactModel) toDomain() model.Contact {
	return model.Contact{
		ID:           m.ID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		Email:        m.Email,
		ProfileURL:   m.ProfileURL,
		SocialHandle: m.SocialHandle,
		Outlet:       m.Outlet,
		IsActive:     m.IsActive,
		IsVerified:   m.IsVerified,
	}
}

type alertModel struct {
	AlertID         string `gorm:"primaryKey;column:alert_id"`
	TenantID        string `gorm:"index;not null"`
	ContactID       string `gorm:"index"`
	AlertType       string `gorm:"not null"`
	AlertSeverity   string `gorm:"not null"`
	Message         string `gorm:"column:alert_message"`
	PreviousValue   string
	NewValue        string
	DetectedAt      time.Time
	ConfidenceScore int
	Source          string
	CreatedAt       time.Time
}

func (alertModel) TableName() string { return "monitoring_alerts" }

func newAlertModel(tenantID string, a model.MonitoringAlert, persistedAt time.Time) alertModel {
	return alertModel{
		AlertID:         a.AlertID,
		TenantID:        tenantID,
		ContactID:       a.ContactID,
		AlertType:       a.AlertType.String(),
		AlertSeverity:   a.AlertSeverity.String(),
		Message:         a.Message,
		PreviousValue:   a.PreviousValue,
		NewValue:        a.NewValue,
		DetectedAt:      a.DetectedAt,
		ConfidenceScore: a.ConfidenceScore,
		Source:          a.Source,
		CreatedAt:       persistedAt,
	}
}
