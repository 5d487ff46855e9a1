package dto

import (
	"ramadanku_backend/internals/features/volunteers/model"
)

// VolunteerRequest adalah payload pendaftaran relawan dari form publik.
type VolunteerRequest struct {
	VolunteerFullName             string `json:"volunteer_full_name" validate:"required"`
	VolunteerNationality          string `json:"volunteer_nationality"`
	VolunteerIDNumber             string `json:"volunteer_id_number"`
	VolunteerProfession           string `json:"volunteer_profession"`
	VolunteerAge                  int    `json:"volunteer_age" validate:"gte=0,lte=120"`
	VolunteerWorkOrStudyPlace     string `json:"volunteer_work_or_study_place"`
	VolunteerIDExpiryStatus       string `json:"volunteer_id_expiry_status"`
	VolunteerRequiresSponsor      string `json:"volunteer_requires_sponsor"`
	VolunteerPhoneNumber          string `json:"volunteer_phone_number" validate:"required"`
	VolunteerRelativePhoneNumber  string `json:"volunteer_relative_phone_number"`
	VolunteerEmail                string `json:"volunteer_email" validate:"omitempty,email"`
	VolunteerField                string `json:"volunteer_field"`
	VolunteerDirectSupervisor     string `json:"volunteer_direct_supervisor"`
	VolunteerDailyHours           int    `json:"volunteer_daily_hours" validate:"gte=0,lte=24"`
	VolunteerRecordHours          string `json:"volunteer_record_hours"`
	VolunteerFutureRecommendation string `json:"volunteer_future_recommendation"`
	VolunteerNotes                string `json:"volunteer_notes"`
}

// Convert request → model
func (r *VolunteerRequest) ToModel() *model.VolunteerModel {
	return &model.VolunteerModel{
		VolunteerFullName:             r.VolunteerFullName,
		VolunteerNationality:          r.VolunteerNationality,
		VolunteerIDNumber:             r.VolunteerIDNumber,
		VolunteerProfession:           r.VolunteerProfession,
		VolunteerAge:                  r.VolunteerAge,
		VolunteerWorkOrStudyPlace:     r.VolunteerWorkOrStudyPlace,
		VolunteerIDExpiryStatus:       r.VolunteerIDExpiryStatus,
		VolunteerRequiresSponsor:      r.VolunteerRequiresSponsor,
		VolunteerPhoneNumber:          r.VolunteerPhoneNumber,
		VolunteerRelativePhoneNumber:  r.VolunteerRelativePhoneNumber,
		VolunteerEmail:                r.VolunteerEmail,
		VolunteerField:                r.VolunteerField,
		VolunteerDirectSupervisor:     r.VolunteerDirectSupervisor,
		VolunteerDailyHours:           r.VolunteerDailyHours,
		VolunteerRecordHours:          r.VolunteerRecordHours,
		VolunteerFutureRecommendation: r.VolunteerFutureRecommendation,
		VolunteerNotes:                r.VolunteerNotes,
	}
}
