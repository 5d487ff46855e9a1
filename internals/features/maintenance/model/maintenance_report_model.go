package model

import (
	"time"

	"ramadanku_backend/internals/constants"
)

// MaintenanceReportModel adalah laporan kebersihan & pemeliharaan harian
// satu masjid. Mengikuti alur status yang sama dengan laporan aktivitas.
type MaintenanceReportModel struct {
	MaintenanceID             string    `gorm:"column:maintenance_id;primaryKey;type:varchar(64)" json:"maintenance_id"`
	MaintenanceMosqueID       string    `gorm:"column:maintenance_mosque_id;type:varchar(64);not null" json:"maintenance_mosque_id"`
	MaintenanceDayCode        string    `gorm:"column:maintenance_day_code;type:varchar(8);not null" json:"maintenance_day_code"`
	MaintenanceSupervisorName string    `gorm:"column:maintenance_supervisor_name;type:varchar(255)" json:"maintenance_supervisor_name"`
	MaintenanceCleaningDone   bool      `gorm:"column:maintenance_cleaning_done;default:false" json:"maintenance_cleaning_done"`
	MaintenanceMaintenanceDone bool     `gorm:"column:maintenance_maintenance_done;default:false" json:"maintenance_maintenance_done"`
	MaintenanceNeeds          string    `gorm:"column:maintenance_needs;type:text" json:"maintenance_needs"`
	MaintenanceStatus         string    `gorm:"column:maintenance_status;type:varchar(32);not null" json:"maintenance_status"`
	MaintenanceCreatedAt      time.Time `gorm:"column:maintenance_created_at;autoCreateTime" json:"maintenance_created_at"`
	MaintenanceUpdatedAt      time.Time `gorm:"column:maintenance_updated_at;autoUpdateTime" json:"maintenance_updated_at"`
}

// TableName override
func (MaintenanceReportModel) TableName() string {
	return "maintenance_reports"
}

func (m *MaintenanceReportModel) IsPending() bool {
	return m.MaintenanceStatus == constants.StatusPending
}
