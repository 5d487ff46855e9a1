package model

import "time"

// VolunteerModel adalah pendaftaran relawan Ramadhan. Dibuat sekali lewat
// form pendaftaran; tidak ada edit/hapus.
type VolunteerModel struct {
	VolunteerID                  string    `gorm:"column:volunteer_id;primaryKey;type:varchar(64)" json:"volunteer_id"`
	VolunteerFullName            string    `gorm:"column:volunteer_full_name;type:varchar(255);not null" json:"volunteer_full_name"`
	VolunteerNationality         string    `gorm:"column:volunteer_nationality;type:varchar(100)" json:"volunteer_nationality"`
	VolunteerIDNumber            string    `gorm:"column:volunteer_id_number;type:varchar(64)" json:"volunteer_id_number"`
	VolunteerProfession          string    `gorm:"column:volunteer_profession;type:varchar(255)" json:"volunteer_profession"`
	VolunteerAge                 int       `gorm:"column:volunteer_age;default:0" json:"volunteer_age"`
	VolunteerWorkOrStudyPlace    string    `gorm:"column:volunteer_work_or_study_place;type:varchar(255)" json:"volunteer_work_or_study_place"`
	VolunteerIDExpiryStatus      string    `gorm:"column:volunteer_id_expiry_status;type:varchar(32)" json:"volunteer_id_expiry_status"`
	VolunteerRequiresSponsor     string    `gorm:"column:volunteer_requires_sponsor_approval;type:varchar(32)" json:"volunteer_requires_sponsor_approval"`
	VolunteerPhoneNumber         string    `gorm:"column:volunteer_phone_number;type:varchar(32)" json:"volunteer_phone_number"`
	VolunteerRelativePhoneNumber string    `gorm:"column:volunteer_relative_phone_number;type:varchar(32)" json:"volunteer_relative_phone_number"`
	VolunteerEmail               string    `gorm:"column:volunteer_email;type:varchar(255)" json:"volunteer_email"`
	VolunteerField               string    `gorm:"column:volunteer_field;type:varchar(255)" json:"volunteer_field"`
	VolunteerDirectSupervisor    string    `gorm:"column:volunteer_direct_supervisor;type:varchar(255)" json:"volunteer_direct_supervisor"`
	VolunteerDailyHours          int       `gorm:"column:volunteer_daily_hours;default:0" json:"volunteer_daily_hours"`
	VolunteerRecordHours         string    `gorm:"column:volunteer_record_volunteer_hours;type:varchar(32)" json:"volunteer_record_volunteer_hours"`
	VolunteerFutureRecommendation string   `gorm:"column:volunteer_future_recommendation;type:varchar(32)" json:"volunteer_future_recommendation"`
	VolunteerNotes               string    `gorm:"column:volunteer_notes;type:text" json:"volunteer_notes"`
	VolunteerCreatedAt           time.Time `gorm:"column:volunteer_created_at;autoCreateTime" json:"volunteer_created_at"`
}

// TableName override
func (VolunteerModel) TableName() string {
	return "volunteers"
}
