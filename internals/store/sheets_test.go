package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramadanku_backend/internals/constants"
	reportModel "ramadanku_backend/internals/features/reports/model"
)

const sheetGetBody = `{
  "success": true,
  "sheets": {
    "mosque": [
      {"المعرف": "m1", "اسم المسجد": "مسجد الراجحي الكبير", "كلمة مرور المشرف": "$2a$10$hash"}
    ],
    "Dayd": [
      {"الرمز": "d1", "اليوم": "اليوم 1 من رمضان"},
      {"الرمز": "d2", "اليوم": "اليوم 2 من رمضان"}
    ],
    "daily_mosque_report": [
      {"المعرف": "r-1", "المسجد": "m1", "اليوم": "d1", "المصلين (رجال)": 150, "الحالة": "معتمد"}
    ]
  }
}`

func TestSheetStoreGetAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(sheetGetBody))
	}))
	defer srv.Close()

	s := NewSheetStore(srv.URL, srv.Client())
	snap, err := s.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Mosques, 1)
	assert.Equal(t, "مسجد الراجحي الكبير", snap.Mosques[0].MosqueName)

	require.Len(t, snap.Days, 2)
	assert.Equal(t, "d2", snap.Days[1].Code)

	require.Len(t, snap.Reports, 1)
	assert.Equal(t, 150, snap.Reports[0].Prayer.MaleWorshippers)
	assert.Equal(t, constants.StatusApproved, snap.Reports[0].ReportStatus)

	// sheet relawan & pemeliharaan tidak ada di dokumen → list kosong, bukan error
	assert.Empty(t, snap.Volunteers)
	assert.Empty(t, snap.MaintenanceReports)
}

func TestSheetStoreGetAllBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "boom"}`))
	}))
	defer srv.Close()

	s := NewSheetStore(srv.URL, srv.Client())
	_, err := s.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrFetch)
}

func TestSheetStoreCreateReport(t *testing.T) {
	var gotContentType string
	var gotRow map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotRow))
		_, _ = w.Write([]byte(`{"success": true, "record_id": "r-baru"}`))
	}))
	defer srv.Close()

	s := NewSheetStore(srv.URL, srv.Client())

	r := reportModel.NewBlankReport("d1", "m1", "أحمد")
	r.Prayer.MaleWorshippers = 80
	saved, err := s.CreateReport(context.Background(), r)
	require.NoError(t, err)

	// backend apps-script menolak preflight, jadi body dikirim text/plain
	assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
	assert.Equal(t, SheetDailyReport, gotRow["sheet"])
	assert.Equal(t, "m1", gotRow["المسجد"])
	assert.NotContains(t, gotRow, "المعرف", "create tidak boleh mengirim id")

	assert.Equal(t, "r-baru", saved.ReportID)
	assert.Equal(t, constants.StatusPending, saved.ReportStatus)
}

func TestSheetStorePostFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "sheet penuh"}`))
	}))
	defer srv.Close()

	s := NewSheetStore(srv.URL, srv.Client())
	_, err := s.CreateReport(context.Background(), reportModel.NewBlankReport("d1", "m1", "x"))
	assert.ErrorIs(t, err, ErrPersist)
}

func TestSheetStoreUpdateReportRequiresID(t *testing.T) {
	s := NewSheetStore("http://example.invalid", nil)

	_, err := s.UpdateReport(context.Background(), reportModel.NewBlankReport("d1", "m1", "x"))
	assert.Error(t, err)
}
