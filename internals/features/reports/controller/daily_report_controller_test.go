package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramadanku_backend/internals/constants"
	"ramadanku_backend/internals/features/reports/dto"
	"ramadanku_backend/internals/features/reports/model"
	"ramadanku_backend/internals/store"
)

// fakeAuth meniru auth middleware: langsung set Locals tanpa cek token.
func fakeAuth(role, mosqueID, name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		c.Locals("mosqueId", mosqueID)
		c.Locals("userName", name)
		return c.Next()
	}
}

type fakeSummarizer struct {
	gotReports []model.DailyReportModel
	reply      string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, reports []model.DailyReportModel) (string, error) {
	f.gotReports = reports
	return f.reply, nil
}

func newApp(st store.Store, role, mosqueID string, sum *fakeSummarizer) *fiber.App {
	app := fiber.New()
	var ctrl *DailyReportController
	if sum != nil {
		ctrl = NewDailyReportController(st, sum)
	} else {
		ctrl = NewDailyReportController(st, nil)
	}

	app.Get("/data", ctrl.GetAllData)
	app.Get("/summary/:day", ctrl.GetDailySummary)

	u := app.Group("/u", fakeAuth(role, mosqueID, "أحمد"))
	u.Post("/reports", ctrl.CreateReport)
	u.Put("/reports/:id", ctrl.UpdateReport)

	a := app.Group("/a", fakeAuth(role, mosqueID, "أحمد"))
	a.Patch("/reports/:id/status", ctrl.UpdateStatus)
	a.Post("/analysis/:day", ctrl.AnalyzeDay)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func baseRequest() dto.DailyReportRequest {
	return dto.DailyReportRequest{
		ReportMosqueID:       "m1",
		ReportDayCode:        "d1",
		ReportSupervisorName: "أحمد",
	}
}

func TestCreateReportSupervisorOwnMosqueOnly(t *testing.T) {
	st := store.NewSeededMemoryStore()
	app := newApp(st, constants.RoleSupervisor, "m2", nil)

	resp := doJSON(t, app, http.MethodPost, "/u/reports", baseRequest())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// masjid sendiri boleh
	req := baseRequest()
	req.ReportMosqueID = "m2"
	resp = doJSON(t, app, http.MethodPost, "/u/reports", req)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateReportDuplicateConflict(t *testing.T) {
	st := store.NewSeededMemoryStore()
	app := newApp(st, constants.RoleAdmin, "", nil)

	resp := doJSON(t, app, http.MethodPost, "/u/reports", baseRequest())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/u/reports", baseRequest())
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSupervisorCannotEditProcessedReport(t *testing.T) {
	st := store.NewSeededMemoryStore()
	ctx := context.Background()

	saved, err := st.CreateReport(ctx, model.NewBlankReport("d1", "m1", "أحمد"))
	require.NoError(t, err)
	_, err = st.UpdateReportStatus(ctx, saved.ReportID, constants.StatusApproved)
	require.NoError(t, err)

	app := newApp(st, constants.RoleSupervisor, "m1", nil)
	resp := doJSON(t, app, http.MethodPut, "/u/reports/"+saved.ReportID, baseRequest())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// admin tetap boleh
	adminApp := newApp(st, constants.RoleAdmin, "", nil)
	resp = doJSON(t, adminApp, http.MethodPut, "/u/reports/"+saved.ReportID, baseRequest())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSupervisorCannotEditOtherMosqueReport(t *testing.T) {
	st := store.NewSeededMemoryStore()
	ctx := context.Background()

	saved, err := st.CreateReport(ctx, model.NewBlankReport("d1", "m2", "سعد"))
	require.NoError(t, err)

	app := newApp(st, constants.RoleSupervisor, "m1", nil)
	resp := doJSON(t, app, http.MethodPut, "/u/reports/"+saved.ReportID, baseRequest())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpdateStatusValidation(t *testing.T) {
	st := store.NewSeededMemoryStore()
	ctx := context.Background()

	saved, err := st.CreateReport(ctx, model.NewBlankReport("d1", "m1", "أحمد"))
	require.NoError(t, err)

	app := newApp(st, constants.RoleAdmin, "", nil)

	resp := doJSON(t, app, http.MethodPatch, "/a/reports/"+saved.ReportID+"/status",
		dto.UpdateStatusRequest{Status: "bukan-status"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, "/a/reports/"+saved.ReportID+"/status",
		dto.UpdateStatusRequest{Status: constants.StatusApproved})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, "/a/reports/tidak-ada/status",
		dto.UpdateStatusRequest{Status: constants.StatusRejected})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetDailySummaryEmptyMarker(t *testing.T) {
	st := store.NewSeededMemoryStore()
	app := newApp(st, constants.RoleAdmin, "", nil)

	resp := doJSON(t, app, http.MethodGet, "/summary/d1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			HasReports bool            `json:"has_reports"`
			Totals     json.RawMessage `json:"totals"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.False(t, envelope.Data.HasReports)
	assert.Equal(t, "null", string(envelope.Data.Totals))

	// hari tidak dikenal → 400
	resp = doJSON(t, app, http.MethodGet, "/summary/d99", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeDayOnlyApprovedReports(t *testing.T) {
	st := store.NewSeededMemoryStore()
	ctx := context.Background()

	approved, err := st.CreateReport(ctx, model.NewBlankReport("d1", "m1", "أحمد"))
	require.NoError(t, err)
	_, err = st.UpdateReportStatus(ctx, approved.ReportID, constants.StatusApproved)
	require.NoError(t, err)

	// laporan pending di hari yang sama tidak boleh ikut dianalisis
	_, err = st.CreateReport(ctx, model.NewBlankReport("d1", "m2", "سعد"))
	require.NoError(t, err)

	sum := &fakeSummarizer{reply: "تحليل تجريبي"}
	app := newApp(st, constants.RoleAdmin, "", sum)

	resp := doJSON(t, app, http.MethodPost, "/a/analysis/d1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, sum.gotReports, 1)
	assert.Equal(t, "m1", sum.gotReports[0].ReportMosqueID)
}

func TestAnalyzeDayWithoutSummarizer(t *testing.T) {
	st := store.NewSeededMemoryStore()
	app := newApp(st, constants.RoleAdmin, "", nil)

	resp := doJSON(t, app, http.MethodPost, "/a/analysis/d1", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
