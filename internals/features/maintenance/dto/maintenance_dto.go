package dto

import (
	"ramadanku_backend/internals/features/maintenance/model"
)

// MaintenanceRequest adalah payload laporan kebersihan & pemeliharaan harian.
type MaintenanceRequest struct {
	MaintenanceMosqueID       string `json:"maintenance_mosque_id" validate:"required"`
	MaintenanceDayCode        string `json:"maintenance_day_code" validate:"required"`
	MaintenanceSupervisorName string `json:"maintenance_supervisor_name" validate:"required"`
	MaintenanceCleaningDone   bool   `json:"maintenance_cleaning_done"`
	MaintenanceMaintenanceDone bool  `json:"maintenance_maintenance_done"`
	MaintenanceNeeds          string `json:"maintenance_needs"`
}

// Convert request → model
func (r *MaintenanceRequest) ToModel() *model.MaintenanceReportModel {
	return &model.MaintenanceReportModel{
		MaintenanceMosqueID:        r.MaintenanceMosqueID,
		MaintenanceDayCode:         r.MaintenanceDayCode,
		MaintenanceSupervisorName:  r.MaintenanceSupervisorName,
		MaintenanceCleaningDone:    r.MaintenanceCleaningDone,
		MaintenanceMaintenanceDone: r.MaintenanceMaintenanceDone,
		MaintenanceNeeds:           r.MaintenanceNeeds,
	}
}

// UpdateMaintenanceStatusRequest untuk transisi status oleh admin.
type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
