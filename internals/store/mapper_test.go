package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"ramadanku_backend/internals/constants"
	maintenanceModel "ramadanku_backend/internals/features/maintenance/model"
	reportModel "ramadanku_backend/internals/features/reports/model"
)

func sampleReport() *reportModel.DailyReportModel {
	r := reportModel.NewBlankReport("d3", "m1", "أحمد")
	r.ReportID = "r-123"
	r.Prayer.MaleWorshippers = 150
	r.Prayer.FemaleWorshippers = 80
	r.Iftar.IftarMealsActual = 300
	r.Water.WaterCartons = 12
	r.Hospitality.HospitalityBeneficiaries = 45
	r.Education.MaleStudents = 20
	r.Education.MaleStudentPages = 60
	r.Education.FemaleStudents = 15
	r.Education.FemaleStudentPages = 40
	r.Community.Volunteers = 8
	r.Community.Competitions = 2
	r.Community.NurseryChildren = 10
	r.Community.CommunityProgramBeneficiaries = 30
	r.Community.ProgramName = "برنامج الحي"
	r.Community.ProgramDescription = "فعاليات مجتمعية"
	r.Dawah.MaleDawahTalks = 3
	r.Dawah.FemaleDawahTalks = 1
	r.Dawah.DawahBeneficiaries = 90
	r.Itikaf.MaleItikafParticipants = 25
	r.Itikaf.MaleSuhoorMeals = 25
	r.Itikaf.FemaleItikafParticipants = 10
	r.Itikaf.FemaleSuhoorMeals = 10
	r.General.SupervisorsCount = 4
	r.ReportNotes = "نحتاج دعم"
	r.ReportImages = datatypes.JSON(`["https://img/a.jpg","https://img/b.jpg"]`)
	r.ReportStatus = constants.StatusApproved
	return r
}

func TestReportRoundTrip(t *testing.T) {
	original := sampleReport()

	row := ReportToExternal(original)
	back := ReportToInternal(row)

	assert.Equal(t, original.ReportID, back.ReportID)
	assert.Equal(t, original.ReportMosqueID, back.ReportMosqueID)
	assert.Equal(t, original.ReportDayCode, back.ReportDayCode)
	assert.Equal(t, original.ReportSupervisorName, back.ReportSupervisorName)
	assert.Equal(t, original.Prayer, back.Prayer)
	assert.Equal(t, original.Iftar, back.Iftar)
	assert.Equal(t, original.Water, back.Water)
	assert.Equal(t, original.Hospitality, back.Hospitality)
	assert.Equal(t, original.Education, back.Education)
	assert.Equal(t, original.Community, back.Community)
	assert.Equal(t, original.Dawah, back.Dawah)
	assert.Equal(t, original.Itikaf, back.Itikaf)
	assert.Equal(t, original.General, back.General)
	assert.Equal(t, original.ReportNotes, back.ReportNotes)
	assert.Equal(t, original.ReportStatus, back.ReportStatus)
	assert.JSONEq(t, string(original.ReportImages), string(back.ReportImages))
}

func TestReportToExternalOmitsEmptyID(t *testing.T) {
	r := reportModel.NewBlankReport("d1", "m1", "x")
	row := ReportToExternal(r)

	_, hasID := row["المعرف"]
	assert.False(t, hasID, "baris tanpa ID tidak boleh mengirim kolom المعرف")
}

func TestReportToInternalCoercion(t *testing.T) {
	// angka dari spreadsheet bisa datang sebagai float64, string, atau sampah
	row := map[string]any{
		"المعرف":          "r-9",
		"المسجد":          "m2",
		"اليوم":           "d5",
		"المصلين (رجال)":  float64(120),
		"المصلين (نساء)":  "75",
		"كراتين الماء":    "abc",
		"وجبات الإفطار الفعلية": nil,
	}
	r := ReportToInternal(row)

	assert.Equal(t, 120, r.Prayer.MaleWorshippers)
	assert.Equal(t, 75, r.Prayer.FemaleWorshippers)
	assert.Equal(t, 0, r.Water.WaterCartons, "sel tidak valid harus jadi 0")
	assert.Equal(t, 0, r.Iftar.IftarMealsActual)
}

func TestReportToInternalDefaultsStatusPending(t *testing.T) {
	r := ReportToInternal(map[string]any{
		"المعرف": "r-1",
		"المسجد": "m1",
		"اليوم":  "d1",
	})
	assert.Equal(t, constants.StatusPending, r.ReportStatus)

	r2 := ReportToInternal(map[string]any{
		"الحالة": "status aneh",
	})
	assert.Equal(t, constants.StatusPending, r2.ReportStatus)
}

func maintenanceSample() *maintenanceModel.MaintenanceReportModel {
	return &maintenanceModel.MaintenanceReportModel{
		MaintenanceID:              "mt-1",
		MaintenanceMosqueID:        "m3",
		MaintenanceDayCode:         "d7",
		MaintenanceSupervisorName:  "سعد",
		MaintenanceCleaningDone:    true,
		MaintenanceMaintenanceDone: false,
		MaintenanceNeeds:           "مصابيح للدور الثاني",
		MaintenanceStatus:          constants.StatusPending,
	}
}

func TestMaintenanceRoundTrip(t *testing.T) {
	m := maintenanceSample()

	row := MaintenanceToExternal(m)
	back := MaintenanceToInternal(row)

	require.Equal(t, m.MaintenanceID, back.MaintenanceID)
	assert.Equal(t, m.MaintenanceMosqueID, back.MaintenanceMosqueID)
	assert.Equal(t, m.MaintenanceDayCode, back.MaintenanceDayCode)
	assert.True(t, back.MaintenanceCleaningDone)
	assert.False(t, back.MaintenanceMaintenanceDone)
	assert.Equal(t, m.MaintenanceNeeds, back.MaintenanceNeeds)
}
