package store

import (
	"context"
	"errors"

	"ramadanku_backend/internals/constants"
	maintenanceModel "ramadanku_backend/internals/features/maintenance/model"
	mosqueModel "ramadanku_backend/internals/features/mosques/model"
	reportModel "ramadanku_backend/internals/features/reports/model"
	volunteerModel "ramadanku_backend/internals/features/volunteers/model"
)

// Taksonomi error store. Controller memetakan sentinel ini ke status HTTP,
// tidak pernah retry otomatis.
var (
	// ErrFetch: pembacaan snapshot gagal (jaringan/parse/payload tidak sukses).
	ErrFetch = errors.New("gagal mengambil data dari store")
	// ErrPersist: backend menolak tulisan atau membalas success=false.
	ErrPersist = errors.New("gagal menyimpan data ke store")
	// ErrNotFound: id yang dirujuk tidak ada.
	ErrNotFound = errors.New("data tidak ditemukan")
	// ErrDuplicateReport: sudah ada laporan untuk pasangan (masjid, hari).
	ErrDuplicateReport = errors.New("laporan untuk masjid dan hari tersebut sudah ada")
)

// Snapshot adalah seluruh dataset dalam satu pembacaan. Tidak ada hasil
// parsial: kalau satu bagian gagal, seluruh pembacaan gagal.
type Snapshot struct {
	Mosques            []mosqueModel.MosqueModel                 `json:"mosques"`
	Days               []constants.Day                           `json:"days"`
	Reports            []reportModel.DailyReportModel            `json:"reports"`
	Volunteers         []volunteerModel.VolunteerModel           `json:"volunteers"`
	MaintenanceReports []maintenanceModel.MaintenanceReportModel `json:"maintenance_reports"`
}

// FindReport mencari laporan untuk pasangan (hari, masjid) di snapshot.
// Ini lookup yang dipakai wizard untuk upsert-by-lookup.
func (s *Snapshot) FindReport(dayCode, mosqueID string) *reportModel.DailyReportModel {
	for i := range s.Reports {
		r := &s.Reports[i]
		if r.ReportDayCode == dayCode && r.ReportMosqueID == mosqueID {
			return r
		}
	}
	return nil
}

// FindMosque mencari masjid berdasarkan id.
func (s *Snapshot) FindMosque(mosqueID string) *mosqueModel.MosqueModel {
	for i := range s.Mosques {
		if s.Mosques[i].MosqueID == mosqueID {
			return &s.Mosques[i]
		}
	}
	return nil
}

// Store adalah kontrak penyimpanan tunggal aplikasi. Tiga driver:
// memory (test/dev), sheets (endpoint spreadsheet remote), postgres (gorm).
// Instance store di-inject eksplisit ke semua controller/service —
// tidak ada state global.
//
// Semua create memaksa status awal Pending. Pasangan (masjid, hari) pada
// laporan harian unik; driver yang bisa menjaminnya mengembalikan
// ErrDuplicateReport saat dilanggar.
type Store interface {
	GetAll(ctx context.Context) (*Snapshot, error)

	CreateReport(ctx context.Context, r *reportModel.DailyReportModel) (*reportModel.DailyReportModel, error)
	UpdateReport(ctx context.Context, r *reportModel.DailyReportModel) (*reportModel.DailyReportModel, error)
	UpdateReportStatus(ctx context.Context, id, status string) (*reportModel.DailyReportModel, error)

	CreateVolunteer(ctx context.Context, v *volunteerModel.VolunteerModel) (*volunteerModel.VolunteerModel, error)

	CreateMaintenance(ctx context.Context, m *maintenanceModel.MaintenanceReportModel) (*maintenanceModel.MaintenanceReportModel, error)
	UpdateMaintenance(ctx context.Context, m *maintenanceModel.MaintenanceReportModel) (*maintenanceModel.MaintenanceReportModel, error)
	UpdateMaintenanceStatus(ctx context.Context, id, status string) (*maintenanceModel.MaintenanceReportModel, error)
}
