package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ramadanku_backend/internals/constants"
	maintenanceModel "ramadanku_backend/internals/features/maintenance/model"
	mosqueModel "ramadanku_backend/internals/features/mosques/model"
	reportModel "ramadanku_backend/internals/features/reports/model"
	volunteerModel "ramadanku_backend/internals/features/volunteers/model"
)

// PostgresStore adalah driver produksi di atas GORM. Keunikan
// (masjid, hari) dijaga unique index di tabel daily_mosque_reports.
type PostgresStore struct {
	DB *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(
		&mosqueModel.MosqueModel{},
		&reportModel.DailyReportModel{},
		&volunteerModel.VolunteerModel{},
		&maintenanceModel.MaintenanceReportModel{},
	); err != nil {
		return nil, fmt.Errorf("automigrate gagal: %w", err)
	}
	return &PostgresStore{DB: db}, nil
}

func (s *PostgresStore) GetAll(ctx context.Context) (*Snapshot, error) {
	db := s.DB.WithContext(ctx)
	snap := &Snapshot{
		Days: append([]constants.Day(nil), constants.RamadanDays...),
	}

	if err := db.Find(&snap.Mosques).Error; err != nil {
		return nil, fmt.Errorf("%w: mosques: %v", ErrFetch, err)
	}
	if err := db.Find(&snap.Reports).Error; err != nil {
		return nil, fmt.Errorf("%w: reports: %v", ErrFetch, err)
	}
	if err := db.Find(&snap.Volunteers).Error; err != nil {
		return nil, fmt.Errorf("%w: volunteers: %v", ErrFetch, err)
	}
	if err := db.Find(&snap.MaintenanceReports).Error; err != nil {
		return nil, fmt.Errorf("%w: maintenance: %v", ErrFetch, err)
	}
	return snap, nil
}

func (s *PostgresStore) CreateReport(ctx context.Context, r *reportModel.DailyReportModel) (*reportModel.DailyReportModel, error) {
	stored := *r
	stored.ReportID = uuid.NewString()
	stored.ReportStatus = constants.StatusPending

	if err := s.DB.WithContext(ctx).Create(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: mosque=%s day=%s", ErrDuplicateReport, r.ReportMosqueID, r.ReportDayCode)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return &stored, nil
}

func (s *PostgresStore) UpdateReport(ctx context.Context, r *reportModel.DailyReportModel) (*reportModel.DailyReportModel, error) {
	db := s.DB.WithContext(ctx)

	var existing reportModel.DailyReportModel
	if err := db.Where("report_id = ?", r.ReportID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: report id=%s", ErrNotFound, r.ReportID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	updated := *r
	updated.ReportCreatedAt = existing.ReportCreatedAt
	if err := db.Save(&updated).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return &updated, nil
}

func (s *PostgresStore) UpdateReportStatus(ctx context.Context, id, status string) (*reportModel.DailyReportModel, error) {
	db := s.DB.WithContext(ctx)

	var existing reportModel.DailyReportModel
	if err := db.Where("report_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: report id=%s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if err := db.Model(&existing).Update("report_status", status).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	existing.ReportStatus = status
	return &existing, nil
}

func (s *PostgresStore) CreateVolunteer(ctx context.Context, v *volunteerModel.VolunteerModel) (*volunteerModel.VolunteerModel, error) {
	stored := *v
	stored.VolunteerID = uuid.NewString()

	if err := s.DB.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return &stored, nil
}

func (s *PostgresStore) CreateMaintenance(ctx context.Context, m *maintenanceModel.MaintenanceReportModel) (*maintenanceModel.MaintenanceReportModel, error) {
	stored := *m
	stored.MaintenanceID = uuid.NewString()
	stored.MaintenanceStatus = constants.StatusPending

	if err := s.DB.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return &stored, nil
}

func (s *PostgresStore) UpdateMaintenance(ctx context.Context, m *maintenanceModel.MaintenanceReportModel) (*maintenanceModel.MaintenanceReportModel, error) {
	db := s.DB.WithContext(ctx)

	var existing maintenanceModel.MaintenanceReportModel
	if err := db.Where("maintenance_id = ?", m.MaintenanceID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: maintenance id=%s", ErrNotFound, m.MaintenanceID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	updated := *m
	updated.MaintenanceCreatedAt = existing.MaintenanceCreatedAt
	if err := db.Save(&updated).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return &updated, nil
}

func (s *PostgresStore) UpdateMaintenanceStatus(ctx context.Context, id, status string) (*maintenanceModel.MaintenanceReportModel, error) {
	db := s.DB.WithContext(ctx)

	var existing maintenanceModel.MaintenanceReportModel
	if err := db.Where("maintenance_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: maintenance id=%s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if err := db.Model(&existing).Update("maintenance_status", status).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	existing.MaintenanceStatus = status
	return &existing, nil
}
