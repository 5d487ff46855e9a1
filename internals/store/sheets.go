package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ramadanku_backend/internals/constants"
	maintenanceModel "ramadanku_backend/internals/features/maintenance/model"
	reportModel "ramadanku_backend/internals/features/reports/model"
	volunteerModel "ramadanku_backend/internals/features/volunteers/model"
)

// SheetStore bicara ke satu endpoint HTTP bergaya spreadsheet:
// GET mengembalikan seluruh sheet dalam satu dokumen JSON, POST menulis satu
// baris ke sheet tertentu. Body POST dikirim dengan Content-Type text/plain
// supaya tidak memicu preflight CORS di sisi deployment script-nya.
//
// Keterbatasan driver: backend menerima tulisan apa adanya, jadi keunikan
// (masjid, hari) tidak bisa dijamin di sini — wizard mengandalkan
// upsert-by-lookup saja untuk driver ini.
type SheetStore struct {
	endpoint string
	client   *http.Client
}

func NewSheetStore(endpoint string, client *http.Client) *SheetStore {
	if client == nil {
		// Tanpa timeout klien; deadline dibawa ctx per request.
		client = &http.Client{}
	}
	return &SheetStore{endpoint: endpoint, client: client}
}

type sheetGetResponse struct {
	Success bool `json:"success"`
	Message string `json:"message"`
	Sheets  struct {
		Mosques     []map[string]any `json:"mosque"`
		Reports     []map[string]any `json:"daily_mosque_report"`
		Days        []map[string]any `json:"Dayd"`
		Volunteers  []map[string]any `json:"volunteer"`
		Maintenance []map[string]any `json:"maintenance_report"`
	} `json:"sheets"`
}

type sheetPostResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RecordID string `json:"record_id"`
}

func (s *SheetStore) GetAll(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status HTTP %d", ErrFetch, resp.StatusCode)
	}

	var payload sheetGetResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrFetch, err)
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: backend membalas success=false (%s)", ErrFetch, payload.Message)
	}

	snap := &Snapshot{}
	for _, row := range payload.Sheets.Mosques {
		snap.Mosques = append(snap.Mosques, MosqueToInternal(row))
	}
	for _, row := range payload.Sheets.Days {
		snap.Days = append(snap.Days, DayToInternal(row))
	}
	for _, row := range payload.Sheets.Reports {
		snap.Reports = append(snap.Reports, ReportToInternal(row))
	}
	// Sheet volunteer dan maintenance boleh absen — default list kosong.
	for _, row := range payload.Sheets.Volunteers {
		snap.Volunteers = append(snap.Volunteers, VolunteerToInternal(row))
	}
	for _, row := range payload.Sheets.Maintenance {
		snap.MaintenanceReports = append(snap.MaintenanceReports, MaintenanceToInternal(row))
	}
	return snap, nil
}

// postRow menulis satu baris ke sheet tertentu dan mengembalikan record_id
// pemberian backend (kosong untuk update).
func (s *SheetStore) postRow(ctx context.Context, sheet string, row map[string]any) (string, error) {
	body := make(map[string]any, len(row)+1)
	for k, v := range row {
		body[k] = v
	}
	body["sheet"] = sheet

	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: marshal: %v", ErrPersist, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersist, err)
	}
	// text/plain, bukan application/json: menghindari preflight.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersist, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status HTTP %d", ErrPersist, resp.StatusCode)
	}

	var payload sheetPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrPersist, err)
	}
	if !payload.Success {
		log.Printf("[ERROR] Sheet %s menolak tulisan: %s", sheet, payload.Message)
		return "", fmt.Errorf("%w: %s", ErrPersist, payload.Message)
	}
	return payload.RecordID, nil
}

func (s *SheetStore) CreateReport(ctx context.Context, r *reportModel.DailyReportModel) (*reportModel.DailyReportModel, error) {
	stored := *r
	stored.ReportID = ""
	stored.ReportStatus = constants.StatusPending

	recordID, err := s.postRow(ctx, SheetDailyReport, ReportToExternal(&stored))
	if err != nil {
		return nil, err
	}
	stored.ReportID = recordID
	return &stored, nil
}

func (s *SheetStore) UpdateReport(ctx context.Context, r *reportModel.DailyReportModel) (*reportModel.DailyReportModel, error) {
	if r.ReportID == "" {
		return nil, fmt.Errorf("%w: update laporan tanpa id", ErrPersist)
	}
	// Backend tidak memverifikasi keberadaan id sebelum menerima.
	if _, err := s.postRow(ctx, SheetDailyReport, ReportToExternal(r)); err != nil {
		return nil, err
	}
	out := *r
	return &out, nil
}

func (s *SheetStore) UpdateReportStatus(ctx context.Context, id, status string) (*reportModel.DailyReportModel, error) {
	// Ambil baris terakhir dari snapshot supaya baris yang ditulis lengkap,
	// bukan cuma id+status.
	snap, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var target *reportModel.DailyReportModel
	for i := range snap.Reports {
		if snap.Reports[i].ReportID == id {
			target = &snap.Reports[i]
			break
		}
	}
	if target == nil {
		// Varian remote tetap menulis; backend menerima apa adanya.
		row := map[string]any{"المعرف": id, "الحالة": status}
		if _, err := s.postRow(ctx, SheetDailyReport, row); err != nil {
			return nil, err
		}
		return &reportModel.DailyReportModel{ReportID: id, ReportStatus: status}, nil
	}

	target.ReportStatus = status
	if _, err := s.postRow(ctx, SheetDailyReport, ReportToExternal(target)); err != nil {
		return nil, err
	}
	out := *target
	return &out, nil
}

func (s *SheetStore) CreateVolunteer(ctx context.Context, v *volunteerModel.VolunteerModel) (*volunteerModel.VolunteerModel, error) {
	stored := *v
	stored.VolunteerID = ""

	recordID, err := s.postRow(ctx, SheetVolunteer, VolunteerToExternal(&stored))
	if err != nil {
		return nil, err
	}
	stored.VolunteerID = recordID
	return &stored, nil
}

func (s *SheetStore) CreateMaintenance(ctx context.Context, m *maintenanceModel.MaintenanceReportModel) (*maintenanceModel.MaintenanceReportModel, error) {
	stored := *m
	stored.MaintenanceID = ""
	stored.MaintenanceStatus = constants.StatusPending

	recordID, err := s.postRow(ctx, SheetMaintenance, MaintenanceToExternal(&stored))
	if err != nil {
		return nil, err
	}
	stored.MaintenanceID = recordID
	return &stored, nil
}

func (s *SheetStore) UpdateMaintenance(ctx context.Context, m *maintenanceModel.MaintenanceReportModel) (*maintenanceModel.MaintenanceReportModel, error) {
	if m.MaintenanceID == "" {
		return nil, fmt.Errorf("%w: update laporan pemeliharaan tanpa id", ErrPersist)
	}
	if _, err := s.postRow(ctx, SheetMaintenance, MaintenanceToExternal(m)); err != nil {
		return nil, err
	}
	out := *m
	return &out, nil
}

func (s *SheetStore) UpdateMaintenanceStatus(ctx context.Context, id, status string) (*maintenanceModel.MaintenanceReportModel, error) {
	snap, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var target *maintenanceModel.MaintenanceReportModel
	for i := range snap.MaintenanceReports {
		if snap.MaintenanceReports[i].MaintenanceID == id {
			target = &snap.MaintenanceReports[i]
			break
		}
	}
	if target == nil {
		row := map[string]any{"المعرف": id, "الحالة": status}
		if _, err := s.postRow(ctx, SheetMaintenance, row); err != nil {
			return nil, err
		}
		return &maintenanceModel.MaintenanceReportModel{MaintenanceID: id, MaintenanceStatus: status}, nil
	}

	target.MaintenanceStatus = status
	if _, err := s.postRow(ctx, SheetMaintenance, MaintenanceToExternal(target)); err != nil {
		return nil, err
	}
	out := *target
	return &out, nil
}
