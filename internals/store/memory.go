package store

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ramadanku_backend/internals/constants"
	maintenanceModel "ramadanku_backend/internals/features/maintenance/model"
	mosqueModel "ramadanku_backend/internals/features/mosques/model"
	reportModel "ramadanku_backend/internals/features/reports/model"
	volunteerModel "ramadanku_backend/internals/features/volunteers/model"
)

// MemoryStore menyimpan semuanya di memori, dilindungi satu mutex.
// Dipakai untuk test dan mode dev. Tanpa durabilitas; last writer wins.
type MemoryStore struct {
	mu          sync.Mutex
	mosques     []mosqueModel.MosqueModel
	reports     []reportModel.DailyReportModel
	volunteers  []volunteerModel.VolunteerModel
	maintenance []maintenanceModel.MaintenanceReportModel
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededMemoryStore mengisi dataset contoh supaya mode dev langsung
// bisa dipakai tanpa seeding eksternal.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	seed := []struct {
		id, name, password string
	}{
		{"m1", "مسجد الراجحي الكبير", "pass1"},
		{"m2", "جامع الأميرة سارة", "pass2"},
		{"m3", "مسجد الملك فهد", "pass3"},
	}
	for _, m := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(m.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[ERROR] Gagal hash password seed masjid %s: %v", m.id, err)
			continue
		}
		s.mosques = append(s.mosques, mosqueModel.MosqueModel{
			MosqueID:                     m.id,
			MosqueName:                   m.name,
			MosqueSupervisorPasswordHash: string(hash),
		})
	}
	return s
}

// SetMosques mengganti data referensi masjid (dipakai test & seeding).
func (s *MemoryStore) SetMosques(mosques []mosqueModel.MosqueModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mosques = append([]mosqueModel.MosqueModel(nil), mosques...)
}

func (s *MemoryStore) GetAll(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Salin semuanya: snapshot yang keluar tidak boleh alias state internal.
	snap := &Snapshot{
		Mosques:            append([]mosqueModel.MosqueModel(nil), s.mosques...),
		Days:               append([]constants.Day(nil), constants.RamadanDays...),
		Reports:            append([]reportModel.DailyReportModel(nil), s.reports...),
		Volunteers:         append([]volunteerModel.VolunteerModel(nil), s.volunteers...),
		MaintenanceReports: append([]maintenanceModel.MaintenanceReportModel(nil), s.maintenance...),
	}
	return snap, nil
}

func (s *MemoryStore) CreateReport(ctx context.Context, r *reportModel.DailyReportModel) (*reportModel.DailyReportModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Unik per (masjid, hari) — dicek di bawah mutex yang sama dengan append,
	// jadi dua create yang balapan tidak bisa sama-sama lolos.
	for i := range s.reports {
		if s.reports[i].ReportMosqueID == r.ReportMosqueID && s.reports[i].ReportDayCode == r.ReportDayCode {
			return nil, fmt.Errorf("%w: mosque=%s day=%s", ErrDuplicateReport, r.ReportMosqueID, r.ReportDayCode)
		}
	}

	stored := *r
	stored.ReportID = uuid.NewString()
	stored.ReportStatus = constants.StatusPending
	s.reports = append(s.reports, stored)

	out := stored
	return &out, nil
}

func (s *MemoryStore) UpdateReport(ctx context.Context, r *reportModel.DailyReportModel) (*reportModel.DailyReportModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ReportID == r.ReportID {
			updated := *r
			updated.ReportCreatedAt = s.reports[i].ReportCreatedAt
			s.reports[i] = updated
			out := updated
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: report id=%s", ErrNotFound, r.ReportID)
}

func (s *MemoryStore) UpdateReportStatus(ctx context.Context, id, status string) (*reportModel.DailyReportModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ReportID == id {
			s.reports[i].ReportStatus = status
			out := s.reports[i]
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: report id=%s", ErrNotFound, id)
}

func (s *MemoryStore) CreateVolunteer(ctx context.Context, v *volunteerModel.VolunteerModel) (*volunteerModel.VolunteerModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *v
	stored.VolunteerID = uuid.NewString()
	s.volunteers = append(s.volunteers, stored)

	out := stored
	return &out, nil
}

func (s *MemoryStore) CreateMaintenance(ctx context.Context, m *maintenanceModel.MaintenanceReportModel) (*maintenanceModel.MaintenanceReportModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *m
	stored.MaintenanceID = uuid.NewString()
	stored.MaintenanceStatus = constants.StatusPending
	s.maintenance = append(s.maintenance, stored)

	out := stored
	return &out, nil
}

func (s *MemoryStore) UpdateMaintenance(ctx context.Context, m *maintenanceModel.MaintenanceReportModel) (*maintenanceModel.MaintenanceReportModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.maintenance {
		if s.maintenance[i].MaintenanceID == m.MaintenanceID {
			updated := *m
			updated.MaintenanceCreatedAt = s.maintenance[i].MaintenanceCreatedAt
			s.maintenance[i] = updated
			out := updated
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: maintenance id=%s", ErrNotFound, m.MaintenanceID)
}

func (s *MemoryStore) UpdateMaintenanceStatus(ctx context.Context, id, status string) (*maintenanceModel.MaintenanceReportModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.maintenance {
		if s.maintenance[i].MaintenanceID == id {
			s.maintenance[i].MaintenanceStatus = status
			out := s.maintenance[i]
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: maintenance id=%s", ErrNotFound, id)
}
