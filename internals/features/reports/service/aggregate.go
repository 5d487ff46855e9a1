package service

import "ramadanku_backend/internals/features/reports/model"

// CommunityTotals sengaja tidak memuat field teks (nama/deskripsi program):
// teks tidak pernah dijumlahkan.
type CommunityTotals struct {
	Volunteers                    int `json:"volunteers"`
	Competitions                  int `json:"competitions"`
	NurseryChildren               int `json:"nursery_children"`
	CommunityProgramBeneficiaries int `json:"community_program_beneficiaries"`
}

// DayTotals adalah hasil agregasi satu hari: jumlah per kategori plus
// berapa laporan yang berkontribusi.
type DayTotals struct {
	DayCode     string `json:"day_code"`
	ReportCount int    `json:"report_count"`

	Prayer      model.PrayerStats      `json:"prayer"`
	Iftar       model.IftarStats       `json:"iftar"`
	Water       model.WaterStats       `json:"water"`
	Hospitality model.HospitalityStats `json:"hospitality"`
	Education   model.EducationStats   `json:"quran_education"`
	Community   CommunityTotals        `json:"community"`
	Dawah       model.DawahStats       `json:"dawah"`
	Itikaf      model.ItikafStats      `json:"itikaf"`
	General     model.GeneralStats     `json:"general"`
}

// Aggregate menyaring laporan ke dayCode yang persis sama lalu menjumlahkan
// semua metrik numerik. Mengembalikan nil kalau tidak ada laporan untuk hari
// itu — penanda kosong eksplisit, beda dengan "belum pilih hari" yang
// ditangani controller. Reduksi murni: tanpa bobot, tanpa deduplikasi.
func Aggregate(reports []model.DailyReportModel, dayCode string) *DayTotals {
	totals := &DayTotals{DayCode: dayCode}

	for i := range reports {
		r := &reports[i]
		if r.ReportDayCode != dayCode {
			continue
		}
		totals.ReportCount++

		totals.Prayer.MaleWorshippers += r.Prayer.MaleWorshippers
		totals.Prayer.FemaleWorshippers += r.Prayer.FemaleWorshippers

		totals.Iftar.IftarMealsActual += r.Iftar.IftarMealsActual
		totals.Water.WaterCartons += r.Water.WaterCartons
		totals.Hospitality.HospitalityBeneficiaries += r.Hospitality.HospitalityBeneficiaries

		totals.Education.MaleStudents += r.Education.MaleStudents
		totals.Education.MaleStudentPages += r.Education.MaleStudentPages
		totals.Education.FemaleStudents += r.Education.FemaleStudents
		totals.Education.FemaleStudentPages += r.Education.FemaleStudentPages

		totals.Community.Volunteers += r.Community.Volunteers
		totals.Community.Competitions += r.Community.Competitions
		totals.Community.NurseryChildren += r.Community.NurseryChildren
		totals.Community.CommunityProgramBeneficiaries += r.Community.CommunityProgramBeneficiaries

		totals.Dawah.MaleDawahTalks += r.Dawah.MaleDawahTalks
		totals.Dawah.FemaleDawahTalks += r.Dawah.FemaleDawahTalks
		totals.Dawah.DawahBeneficiaries += r.Dawah.DawahBeneficiaries

		totals.Itikaf.MaleItikafParticipants += r.Itikaf.MaleItikafParticipants
		totals.Itikaf.MaleSuhoorMeals += r.Itikaf.MaleSuhoorMeals
		totals.Itikaf.FemaleItikafParticipants += r.Itikaf.FemaleItikafParticipants
		totals.Itikaf.FemaleSuhoorMeals += r.Itikaf.FemaleSuhoorMeals

		totals.General.SupervisorsCount += r.General.SupervisorsCount
	}

	if totals.ReportCount == 0 {
		return nil
	}
	return totals
}
