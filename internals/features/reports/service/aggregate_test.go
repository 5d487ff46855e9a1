package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramadanku_backend/internals/features/reports/model"
)

func TestAggregateEmptyIsNil(t *testing.T) {
	assert.Nil(t, Aggregate(nil, "d1"))
	assert.Nil(t, Aggregate([]model.DailyReportModel{}, "d1"))
}

func TestAggregateFiltersByDay(t *testing.T) {
	r1 := model.NewBlankReport("d1", "m1", "أحمد")
	r1.Prayer.MaleWorshippers = 10
	r2 := model.NewBlankReport("d2", "m1", "أحمد")
	r2.Prayer.MaleWorshippers = 999

	totals := Aggregate([]model.DailyReportModel{*r1, *r2}, "d1")
	require.NotNil(t, totals)
	assert.Equal(t, 1, totals.ReportCount)
	assert.Equal(t, 10, totals.Prayer.MaleWorshippers)

	// hari tanpa laporan sama sekali → nil, bukan nol
	assert.Nil(t, Aggregate([]model.DailyReportModel{*r1, *r2}, "d3"))
}

func TestAggregateSumsAllMetrics(t *testing.T) {
	a := model.NewBlankReport("d5", "m1", "أحمد")
	a.Prayer = model.PrayerStats{MaleWorshippers: 100, FemaleWorshippers: 50}
	a.Iftar.IftarMealsActual = 200
	a.Water.WaterCartons = 5
	a.Hospitality.HospitalityBeneficiaries = 30
	a.Education = model.EducationStats{MaleStudents: 10, MaleStudentPages: 25, FemaleStudents: 8, FemaleStudentPages: 16}
	a.Community = model.CommunityStats{Volunteers: 4, Competitions: 1, NurseryChildren: 6, CommunityProgramBeneficiaries: 12, ProgramName: "برنامج أ"}
	a.Dawah = model.DawahStats{MaleDawahTalks: 2, FemaleDawahTalks: 1, DawahBeneficiaries: 40}
	a.Itikaf = model.ItikafStats{MaleItikafParticipants: 9, MaleSuhoorMeals: 9, FemaleItikafParticipants: 3, FemaleSuhoorMeals: 3}
	a.General.SupervisorsCount = 2

	b := model.NewBlankReport("d5", "m2", "سعد")
	b.Prayer = model.PrayerStats{MaleWorshippers: 70, FemaleWorshippers: 20}
	b.Iftar.IftarMealsActual = 150
	b.Water.WaterCartons = 3
	b.Hospitality.HospitalityBeneficiaries = 10
	b.Education = model.EducationStats{MaleStudents: 5, MaleStudentPages: 10, FemaleStudents: 2, FemaleStudentPages: 4}
	b.Community = model.CommunityStats{Volunteers: 2, Competitions: 0, NurseryChildren: 1, CommunityProgramBeneficiaries: 3}
	b.Dawah = model.DawahStats{MaleDawahTalks: 1, FemaleDawahTalks: 0, DawahBeneficiaries: 15}
	b.Itikaf = model.ItikafStats{MaleItikafParticipants: 4, MaleSuhoorMeals: 4, FemaleItikafParticipants: 1, FemaleSuhoorMeals: 1}
	b.General.SupervisorsCount = 1

	totals := Aggregate([]model.DailyReportModel{*a, *b}, "d5")
	require.NotNil(t, totals)

	assert.Equal(t, 2, totals.ReportCount)
	assert.Equal(t, "d5", totals.DayCode)

	assert.Equal(t, 170, totals.Prayer.MaleWorshippers)
	assert.Equal(t, 70, totals.Prayer.FemaleWorshippers)
	assert.Equal(t, 350, totals.Iftar.IftarMealsActual)
	assert.Equal(t, 8, totals.Water.WaterCartons)
	assert.Equal(t, 40, totals.Hospitality.HospitalityBeneficiaries)
	assert.Equal(t, model.EducationStats{MaleStudents: 15, MaleStudentPages: 35, FemaleStudents: 10, FemaleStudentPages: 20}, totals.Education)
	assert.Equal(t, CommunityTotals{Volunteers: 6, Competitions: 1, NurseryChildren: 7, CommunityProgramBeneficiaries: 15}, totals.Community)
	assert.Equal(t, model.DawahStats{MaleDawahTalks: 3, FemaleDawahTalks: 1, DawahBeneficiaries: 55}, totals.Dawah)
	assert.Equal(t, model.ItikafStats{MaleItikafParticipants: 13, MaleSuhoorMeals: 13, FemaleItikafParticipants: 4, FemaleSuhoorMeals: 4}, totals.Itikaf)
	assert.Equal(t, 3, totals.General.SupervisorsCount)
}
