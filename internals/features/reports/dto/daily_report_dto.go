package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"ramadanku_backend/internals/features/reports/model"
)

// DailyReportRequest adalah payload create/update laporan lengkap
// (semua kategori sekaligus). Entry per kategori lewat wizard memakai
// CategoryFieldsRequest di bawah.
type DailyReportRequest struct {
	ReportMosqueID       string `json:"report_mosque_id" validate:"required"`
	ReportDayCode        string `json:"report_day_code" validate:"required"`
	ReportSupervisorName string `json:"report_supervisor_name" validate:"required"`

	Prayer      model.PrayerStats      `json:"prayer"`
	Iftar       model.IftarStats       `json:"iftar"`
	Water       model.WaterStats       `json:"water"`
	Hospitality model.HospitalityStats `json:"hospitality"`
	Education   model.EducationStats   `json:"quran_education"`
	Community   model.CommunityStats   `json:"community"`
	Dawah       model.DawahStats       `json:"dawah"`
	Itikaf      model.ItikafStats      `json:"itikaf"`
	General     model.GeneralStats     `json:"general"`

	ReportNotes  string   `json:"report_notes"`
	ReportImages []string `json:"report_images"`
}

// Convert request → model
func (r *DailyReportRequest) ToModel() *model.DailyReportModel {
	m := &model.DailyReportModel{
		ReportMosqueID:       r.ReportMosqueID,
		ReportDayCode:        r.ReportDayCode,
		ReportSupervisorName: r.ReportSupervisorName,
		Prayer:               r.Prayer,
		Iftar:                r.Iftar,
		Water:                r.Water,
		Hospitality:          r.Hospitality,
		Education:            r.Education,
		Community:            r.Community,
		Dawah:                r.Dawah,
		Itikaf:               r.Itikaf,
		General:              r.General,
		ReportNotes:          r.ReportNotes,
	}
	if len(r.ReportImages) > 0 {
		if raw, err := json.Marshal(r.ReportImages); err == nil {
			m.ReportImages = datatypes.JSON(raw)
		}
	}
	return m
}

// CategoryFieldsRequest adalah payload submit wizard: hanya sub-struct
// kategori yang sedang dipilih yang dibaca, sisanya diabaikan.
type CategoryFieldsRequest struct {
	Prayer      *model.PrayerStats      `json:"prayer,omitempty"`
	Iftar       *model.IftarStats       `json:"iftar,omitempty"`
	Water       *model.WaterStats       `json:"water,omitempty"`
	Hospitality *model.HospitalityStats `json:"hospitality,omitempty"`
	Education   *model.EducationStats   `json:"quran_education,omitempty"`
	Community   *model.CommunityStats   `json:"community,omitempty"`
	Dawah       *model.DawahStats       `json:"dawah,omitempty"`
	Itikaf      *model.ItikafStats      `json:"itikaf,omitempty"`
	General     *model.GeneralStats     `json:"general,omitempty"`

	ReportNotes *string `json:"report_notes,omitempty"`
}

// UpdateStatusRequest untuk transisi status oleh admin.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// DailyReportResponse membungkus model untuk response API.
type DailyReportResponse struct {
	ReportID             string `json:"report_id"`
	ReportMosqueID       string `json:"report_mosque_id"`
	ReportDayCode        string `json:"report_day_code"`
	ReportSupervisorName string `json:"report_supervisor_name"`

	Prayer      model.PrayerStats      `json:"prayer"`
	Iftar       model.IftarStats       `json:"iftar"`
	Water       model.WaterStats       `json:"water"`
	Hospitality model.HospitalityStats `json:"hospitality"`
	Education   model.EducationStats   `json:"quran_education"`
	Community   model.CommunityStats   `json:"community"`
	Dawah       model.DawahStats       `json:"dawah"`
	Itikaf      model.ItikafStats      `json:"itikaf"`
	General     model.GeneralStats     `json:"general"`

	ReportNotes  string   `json:"report_notes"`
	ReportImages []string `json:"report_images"`
	ReportStatus string   `json:"report_status"`

	ReportCreatedAt string `json:"report_created_at"`
	ReportUpdatedAt string `json:"report_updated_at"`
}

// Convert model → response
func ToDailyReportResponse(m *model.DailyReportModel) *DailyReportResponse {
	var images []string
	if len(m.ReportImages) > 0 {
		_ = json.Unmarshal(m.ReportImages, &images)
	}
	return &DailyReportResponse{
		ReportID:             m.ReportID,
		ReportMosqueID:       m.ReportMosqueID,
		ReportDayCode:        m.ReportDayCode,
		ReportSupervisorName: m.ReportSupervisorName,
		Prayer:               m.Prayer,
		Iftar:                m.Iftar,
		Water:                m.Water,
		Hospitality:          m.Hospitality,
		Education:            m.Education,
		Community:            m.Community,
		Dawah:                m.Dawah,
		Itikaf:               m.Itikaf,
		General:              m.General,
		ReportNotes:          m.ReportNotes,
		ReportImages:         images,
		ReportStatus:         m.ReportStatus,
		ReportCreatedAt:      m.ReportCreatedAt.Format("2006-01-02 15:04:05"),
		ReportUpdatedAt:      m.ReportUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Convert slice → response list
func ToDailyReportResponseList(models []model.DailyReportModel) []DailyReportResponse {
	var result []DailyReportResponse
	for i := range models {
		result = append(result, *ToDailyReportResponse(&models[i]))
	}
	return result
}
