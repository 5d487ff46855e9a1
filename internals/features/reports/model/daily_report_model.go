package model

import (
	"time"

	"gorm.io/datatypes"

	"ramadanku_backend/internals/constants"
)

// Statistik per kategori aktivitas. Satu sub-struct per kategori supaya
// wizard hanya bisa menyentuh field kategori yang dipilih, dicek compile-time
// dan bukan lookup string saat runtime.

type PrayerStats struct {
	MaleWorshippers   int    `gorm:"column:report_male_worshippers;default:0" json:"male_worshippers" validate:"gte=0"`
	FemaleWorshippers int    `gorm:"column:report_female_worshippers;default:0" json:"female_worshippers" validate:"gte=0"`
}

type IftarStats struct {
	IftarMealsActual int    `gorm:"column:report_iftar_meals_actual;default:0" json:"iftar_meals_actual" validate:"gte=0"`
}

type WaterStats struct {
	WaterCartons int    `gorm:"column:report_water_cartons;default:0" json:"water_cartons" validate:"gte=0"`
}

type HospitalityStats struct {
	HospitalityBeneficiaries int    `gorm:"column:report_hospitality_beneficiaries;default:0" json:"hospitality_beneficiaries" validate:"gte=0"`
}

type EducationStats struct {
	MaleStudents       int    `gorm:"column:report_male_students;default:0" json:"male_students" validate:"gte=0"`
	MaleStudentPages   int    `gorm:"column:report_male_student_pages;default:0" json:"male_student_pages" validate:"gte=0"`
	FemaleStudents     int    `gorm:"column:report_female_students;default:0" json:"female_students" validate:"gte=0"`
	FemaleStudentPages int    `gorm:"column:report_female_student_pages;default:0" json:"female_student_pages" validate:"gte=0"`
}

type CommunityStats struct {
	Volunteers                    int    `gorm:"column:report_volunteers;default:0" json:"volunteers" validate:"gte=0"`
	Competitions                  int    `gorm:"column:report_competitions;default:0" json:"competitions" validate:"gte=0"`
	NurseryChildren               int    `gorm:"column:report_nursery_children;default:0" json:"nursery_children" validate:"gte=0"`
	CommunityProgramBeneficiaries int    `gorm:"column:report_community_program_beneficiaries;default:0" json:"community_program_beneficiaries" validate:"gte=0"`
	ProgramName                   string `gorm:"column:report_program_name" json:"program_name"`
	ProgramDescription            string `gorm:"column:report_program_description" json:"program_description"`
}

type DawahStats struct {
	MaleDawahTalks    int    `gorm:"column:report_male_dawah_talks;default:0" json:"male_dawah_talks" validate:"gte=0"`
	FemaleDawahTalks  int    `gorm:"column:report_female_dawah_talks;default:0" json:"female_dawah_talks" validate:"gte=0"`
	DawahBeneficiaries int    `gorm:"column:report_dawah_beneficiaries;default:0" json:"dawah_beneficiaries" validate:"gte=0"`
}

type ItikafStats struct {
	MaleItikafParticipants   int    `gorm:"column:report_male_itikaf_participants;default:0" json:"male_itikaf_participants" validate:"gte=0"`
	MaleSuhoorMeals          int    `gorm:"column:report_male_suhoor_meals;default:0" json:"male_suhoor_meals" validate:"gte=0"`
	FemaleItikafParticipants int    `gorm:"column:report_female_itikaf_participants;default:0" json:"female_itikaf_participants" validate:"gte=0"`
	FemaleSuhoorMeals        int    `gorm:"column:report_female_suhoor_meals;default:0" json:"female_suhoor_meals" validate:"gte=0"`
}

type GeneralStats struct {
	SupervisorsCount int    `gorm:"column:report_supervisors_count;default:0" json:"supervisors_count" validate:"gte=0"`
}

// DailyReportModel adalah laporan aktivitas satu masjid untuk satu hari.
// Pasangan (mosque_id, day_code) unik — di-enforce di layer store.
type DailyReportModel struct {
	ReportID             string `gorm:"column:report_id;primaryKey;type:varchar(64)" json:"report_id"`
	ReportMosqueID       string `gorm:"column:report_mosque_id;type:varchar(64);not null;uniqueIndex:idx_reports_mosque_day" json:"report_mosque_id"`
	ReportDayCode        string `gorm:"column:report_day_code;type:varchar(8);not null;uniqueIndex:idx_reports_mosque_day" json:"report_day_code"`
	ReportSupervisorName string `gorm:"column:report_supervisor_name;type:varchar(255)" json:"report_supervisor_name"`

	Prayer      PrayerStats      `gorm:"embedded" json:"prayer"`
	Iftar       IftarStats       `gorm:"embedded" json:"iftar"`
	Water       WaterStats       `gorm:"embedded" json:"water"`
	Hospitality HospitalityStats `gorm:"embedded" json:"hospitality"`
	Education   EducationStats   `gorm:"embedded" json:"quran_education"`
	Community   CommunityStats   `gorm:"embedded" json:"community"`
	Dawah       DawahStats       `gorm:"embedded" json:"dawah"`
	Itikaf      ItikafStats      `gorm:"embedded" json:"itikaf"`
	General     GeneralStats     `gorm:"embedded" json:"general"`

	ReportNotes  string         `gorm:"column:report_notes;type:text" json:"report_notes"`
	ReportImages datatypes.JSON `gorm:"column:report_images" json:"report_images,omitempty"`
	ReportStatus string         `gorm:"column:report_status;type:varchar(32);not null" json:"report_status"`

	ReportCreatedAt time.Time `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt time.Time `gorm:"column:report_updated_at;autoUpdateTime" json:"report_updated_at"`
}

// TableName override
func (DailyReportModel) TableName() string {
	return "daily_mosque_reports"
}

// NewBlankReport membuat working copy bernilai nol untuk pasangan (hari, masjid).
func NewBlankReport(dayCode, mosqueID, supervisorName string) *DailyReportModel {
	return &DailyReportModel{
		ReportMosqueID:       mosqueID,
		ReportDayCode:        dayCode,
		ReportSupervisorName: supervisorName,
		ReportStatus:         constants.StatusPending,
	}
}

// IsPending: supervisor hanya boleh edit selama status masih pending.
func (m *DailyReportModel) IsPending() bool {
	return m.ReportStatus == constants.StatusPending
}
