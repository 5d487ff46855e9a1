package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ramadanku_backend/internals/constants"
	"ramadanku_backend/internals/features/reports/dto"
	"ramadanku_backend/internals/features/reports/model"
	"ramadanku_backend/internals/store"
)

// State wizard entry harian. Urutan maju: day → mosque → category → fields.
// Mundur (ganti hari/masjid) selalu boleh dan membuang editan yang belum
// di-submit tanpa konfirmasi.
type WizardState string

const (
	StateSelectDay      WizardState = "select_day"
	StateSelectMosque   WizardState = "select_mosque"
	StateSelectCategory WizardState = "select_category"
	StateEditFields     WizardState = "edit_fields"
	StateFinished       WizardState = "finished"
)

var (
	ErrSessionNotFound  = errors.New("sesi wizard tidak ditemukan")
	ErrWrongState       = errors.New("aksi tidak valid untuk state wizard saat ini")
	ErrUnknownDay       = errors.New("kode hari tidak dikenal")
	ErrUnknownMosque    = errors.New("masjid tidak dikenal")
	ErrUnknownCategory  = errors.New("kategori aktivitas tidak dikenal")
	ErrCategoryMismatch = errors.New("payload tidak memuat kategori yang sedang diedit")
)

// WizardSession adalah satu sesi entry milik satu supervisor. Working adalah
// salinan kerja record (hari, masjid) yang sedang diisi; baru dipersist saat
// submit kategori, bukan tiap keystroke.
type WizardSession struct {
	SessionID      string                  `json:"session_id"`
	State          WizardState             `json:"state"`
	SupervisorName string                  `json:"supervisor_name"`
	DayCode        string                  `json:"day_code,omitempty"`
	MosqueID       string                  `json:"mosque_id,omitempty"`
	Category       string                  `json:"category,omitempty"`
	Working        *model.DailyReportModel `json:"working,omitempty"`
	StartedAt      time.Time               `json:"started_at"`
}

// WizardService menyimpan sesi di memori proses. Sesi bukan data domain —
// hilang saat restart itu aman, record yang sudah di-submit ada di store.
type WizardService struct {
	mu       sync.Mutex
	sessions map[string]*WizardSession
	store    store.Store
}

func NewWizardService(st store.Store) *WizardService {
	return &WizardService{
		sessions: make(map[string]*WizardSession),
		store:    st,
	}
}

// Session mengembalikan sesi aktif; dipakai controller untuk cek otorisasi
// sebelum submit.
func (s *WizardService) Session(sessionID string) (*WizardSession, error) {
	return s.get(sessionID)
}

// Start membuka sesi baru di state select_day.
func (s *WizardService) Start(supervisorName string) *WizardSession {
	sess := &WizardSession{
		SessionID:      uuid.NewString(),
		State:          StateSelectDay,
		SupervisorName: supervisorName,
		StartedAt:      time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.SessionID] = sess
	s.mu.Unlock()
	return sess
}

func (s *WizardService) get(sessionID string) (*WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// SelectDay memilih (atau mengganti) hari. Boleh dari state mana pun kecuali
// finished; ganti hari di tengah edit membuang pilihan masjid + working copy.
func (s *WizardService) SelectDay(sessionID, dayCode string) (*WizardSession, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State == StateFinished {
		return nil, ErrWrongState
	}
	if !constants.IsValidDayCode(dayCode) {
		return nil, ErrUnknownDay
	}

	sess.DayCode = dayCode
	sess.MosqueID = ""
	sess.Category = ""
	sess.Working = nil
	sess.State = StateSelectMosque
	return sess, nil
}

// SelectMosque memilih masjid untuk hari yang sudah dipilih, lalu menyiapkan
// working copy: record yang sudah ada untuk pasangan (hari, masjid) kalau ada,
// kalau tidak record kosong bernilai nol. Ganti masjid = working copy lama
// dibuang diam-diam.
func (s *WizardService) SelectMosque(ctx context.Context, sessionID, mosqueID string) (*WizardSession, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State == StateSelectDay || sess.State == StateFinished {
		return nil, ErrWrongState
	}

	snap, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if snap.FindMosque(mosqueID) == nil {
		return nil, ErrUnknownMosque
	}

	if existing := snap.FindReport(sess.DayCode, mosqueID); existing != nil {
		copied := *existing
		sess.Working = &copied
	} else {
		sess.Working = model.NewBlankReport(sess.DayCode, mosqueID, sess.SupervisorName)
	}
	sess.MosqueID = mosqueID
	sess.Category = ""
	sess.State = StateSelectCategory
	return sess, nil
}

// SelectCategory membuka form satu kategori aktivitas.
func (s *WizardService) SelectCategory(sessionID, category string) (*WizardSession, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != StateSelectCategory && sess.State != StateEditFields {
		return nil, ErrWrongState
	}
	if !constants.IsValidCategory(category) {
		return nil, ErrUnknownCategory
	}

	sess.Category = category
	sess.State = StateEditFields
	return sess, nil
}

// SubmitCategory menempel field kategori yang diedit ke working copy lalu
// mempersist SELURUH record (create kalau belum ada, update kalau sudah).
// Setelah sukses working copy diganti hasil balikan store (dapat ID) dan
// wizard kembali ke pemilihan kategori — kategori lain bisa lanjut diisi
// tanpa kehilangan yang barusan disimpan.
func (s *WizardService) SubmitCategory(ctx context.Context, sessionID string, payload *dto.CategoryFieldsRequest) (*WizardSession, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != StateEditFields || sess.Working == nil {
		return nil, ErrWrongState
	}

	if err := applyCategory(sess.Working, sess.Category, payload); err != nil {
		return nil, err
	}

	saved, err := s.persistWorking(ctx, sess)
	if err != nil {
		return nil, err
	}

	sess.Working = saved
	sess.Category = ""
	sess.State = StateSelectCategory
	return sess, nil
}

// persistWorking: create dulu; kalau ternyata pasangan (hari, masjid) sudah
// keburu dibuat proses lain, ambil ID record yang ada lalu update. Pasangan
// unik tetap terjaga di sisi store.
func (s *WizardService) persistWorking(ctx context.Context, sess *WizardSession) (*model.DailyReportModel, error) {
	if sess.Working.ReportID != "" {
		return s.store.UpdateReport(ctx, sess.Working)
	}

	saved, err := s.store.CreateReport(ctx, sess.Working)
	if !errors.Is(err, store.ErrDuplicateReport) {
		return saved, err
	}

	snap, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	existing := snap.FindReport(sess.DayCode, sess.MosqueID)
	if existing == nil {
		return nil, store.ErrFetch
	}
	sess.Working.ReportID = existing.ReportID
	sess.Working.ReportStatus = existing.ReportStatus
	sess.Working.ReportCreatedAt = existing.ReportCreatedAt
	return s.store.UpdateReport(ctx, sess.Working)
}

// CancelCategory keluar dari form kategori tanpa menyimpan. Field yang sempat
// diketik hilang; field kategori lain yang sudah di-submit tidak tersentuh.
func (s *WizardService) CancelCategory(sessionID string) (*WizardSession, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != StateEditFields {
		return nil, ErrWrongState
	}
	sess.Category = ""
	sess.State = StateSelectCategory
	return sess, nil
}

// Finish menutup sesi. Editan yang belum di-submit dibuang.
func (s *WizardService) Finish(sessionID string) (*WizardSession, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.State = StateFinished
	sess.Category = ""
	sess.Working = nil

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return sess, nil
}

// applyCategory menyalin hanya sub-struct kategori yang dipilih (plus catatan
// umum) ke working copy. Sub-struct kategori lain di payload diabaikan.
func applyCategory(working *model.DailyReportModel, category string, payload *dto.CategoryFieldsRequest) error {
	if payload == nil {
		return ErrCategoryMismatch
	}

	switch category {
	case constants.CategoryPrayer:
		if payload.Prayer == nil {
			return ErrCategoryMismatch
		}
		working.Prayer = *payload.Prayer
	case constants.CategoryIftar:
		if payload.Iftar == nil {
			return ErrCategoryMismatch
		}
		working.Iftar = *payload.Iftar
	case constants.CategoryWater:
		if payload.Water == nil {
			return ErrCategoryMismatch
		}
		working.Water = *payload.Water
	case constants.CategoryHospitality:
		if payload.Hospitality == nil {
			return ErrCategoryMismatch
		}
		working.Hospitality = *payload.Hospitality
	case constants.CategoryEducation:
		if payload.Education == nil {
			return ErrCategoryMismatch
		}
		working.Education = *payload.Education
	case constants.CategoryCommunity:
		if payload.Community == nil {
			return ErrCategoryMismatch
		}
		working.Community = *payload.Community
	case constants.CategoryDawah:
		if payload.Dawah == nil {
			return ErrCategoryMismatch
		}
		working.Dawah = *payload.Dawah
	case constants.CategoryItikaf:
		if payload.Itikaf == nil {
			return ErrCategoryMismatch
		}
		working.Itikaf = *payload.Itikaf
	case constants.CategoryGeneral:
		if payload.General == nil {
			return ErrCategoryMismatch
		}
		working.General = *payload.General
	default:
		return ErrUnknownCategory
	}

	if payload.ReportNotes != nil {
		working.ReportNotes = *payload.ReportNotes
	}
	return nil
}
