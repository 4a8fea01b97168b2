package postgres

import (
	"mediawatch-srv/internal/monitor/repository"
	pkgLog "mediawatch-srv/pkg/log"

	"gorm.io/gorm"
)

type implConfigRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

func NewConfigRepository(l pkgLog.Logger, db *gorm.DB) repository.ConfigRepository {
	return &implConfigRepository{l: l, db: db}
}

type implContactRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

func NewContactRepository(l pkgLog.Logger, db *gorm.DB) repository.ContactRepository {
	return &implContactRepository{l: l, db: db}
}

type implAlertRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

func NewAlertRepository(l pkgLog.Logger, db *gorm.DB) repository.AlertRepository {
	return &implAlertRepository{l: l, db: db}
}

// Migrate creates or updates the tables backing the monitoring repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&monitoringConfigModel{}, &contactModel{}, &alertModel{})
}
