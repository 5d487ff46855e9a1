package store

import (
	"encoding/json"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	"ramadanku_backend/internals/constants"
	maintenanceModel "ramadanku_backend/internals/features/maintenance/model"
	mosqueModel "ramadanku_backend/internals/features/mosques/model"
	reportModel "ramadanku_backend/internals/features/reports/model"
	volunteerModel "ramadanku_backend/internals/features/volunteers/model"
)

// Nama sheet di endpoint remote. Ejaan harus persis, termasuk "Dayd".
const (
	SheetMosque      = "mosque"
	SheetDailyReport = "daily_mosque_report"
	SheetDay         = "Dayd"
	SheetVolunteer   = "volunteer"
	SheetMaintenance = "maintenance_report"
)

// Label kolom sheet eksternal. Dipakai byte-for-byte di dua arah —
// jangan "rapikan" string di bawah ini.
const (
	keyReportID         = "المعرف"
	keyReportMosque     = "المسجد"
	keyReportDay        = "اليوم"
	keyReportSupervisor = "اسم المشرف"

	keyMaleWorshippers   = "المصلين (رجال)"
	keyFemaleWorshippers = "المصلين (نساء)"

	keyIftarMealsActual = "وجبات الإفطار الفعلية"
	keyWaterCartons     = "كراتين الماء"
	keyHospitality      = "مستفيدي الضيافة"

	keyMaleStudents       = "الطلاب"
	keyMaleStudentPages   = "أوجه الطلاب"
	keyFemaleStudents     = "الطالبات"
	keyFemaleStudentPages = "أوجه الطالبات"

	keyVolunteers         = "المتطوعون"
	keyCompetitions       = "المسابقات"
	keyNurseryChildren    = "أطفال الحضانة"
	keyCommunityBenef     = "مستفيدي البرامج المجتمعية"
	keyProgramName        = "اسم البرنامج"
	keyProgramDescription = "وصف البرنامج"

	keyMaleDawahTalks     = "الكلمات الدعوية (رجال)"
	keyFemaleDawahTalks   = "الكلمات الدعوية (نساء)"
	keyDawahBeneficiaries = "مستفيدي الكلمات"

	keyMaleItikaf   = "المعتكفين"
	keyMaleSuhoor   = "وجبات السحور (رجال)"
	keyFemaleItikaf = "المعتكفات"
	keyFemaleSuhoor = "وجبات السحور (نساء)"

	keySupervisorsCount = "عدد المشرفين"
	keyNotes            = "ملاحظات"
	keyImages           = "الصور"
	keyStatus           = "الحالة"
)

const (
	keyMosqueID           = "المعرف"
	keyMosqueName         = "اسم المسجد"
	keyMosquePasswordHash = "كلمة مرور المشرف"
)

const (
	keyDayCode  = "الرمز"
	keyDayLabel = "اليوم"
)

const (
	keyVolID             = "المعرف"
	keyVolFullName       = "الاسم الرباعي"
	keyVolNationality    = "الجنسية"
	keyVolIDNumber       = "رقم الهوية"
	keyVolProfession     = "المهنة"
	keyVolAge            = "العمر"
	keyVolWorkPlace      = "جهة العمل أو الدراسة"
	keyVolIDExpiry       = "حالة انتهاء الهوية"
	keyVolSponsor        = "موافقة الكفيل"
	keyVolPhone          = "رقم الجوال"
	keyVolRelativePhone  = "رقم جوال قريب"
	keyVolEmail          = "البريد الإلكتروني"
	keyVolField          = "مجال التطوع"
	keyVolSupervisor     = "المشرف المباشر"
	keyVolDailyHours     = "عدد الساعات اليومية"
	keyVolRecordHours    = "توثيق الساعات التطوعية"
	keyVolRecommendation = "التوصية مستقبلاً"
	keyVolNotes          = "ملاحظات"
)

const (
	keyMaintID         = "المعرف"
	keyMaintMosque     = "المسجد"
	keyMaintDay        = "اليوم"
	keyMaintSupervisor = "اسم المشرف"
	keyMaintCleaning   = "تمت النظافة"
	keyMaintWork       = "تمت الصيانة"
	keyMaintNeeds      = "الاحتياجات"
	keyMaintStatus     = "الحالة"

	yesLabel = "نعم"
	noLabel  = "لا"
)

// ============================================================
// Koersi nilai sel. Sheet bisa mengirim angka sebagai number
// JSON, string angka, atau string kosong — semuanya harus jatuh
// ke default yang aman, tidak pernah NaN/nil.
// ============================================================

func cellInt(row map[string]any, key string) int {
	v, ok := row[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func cellString(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func cellBool(row map[string]any, key string) bool {
	return cellString(row, key) == yesLabel
}

func yesNo(b bool) string {
	if b {
		return yesLabel
	}
	return noLabel
}

func imagesToCell(images datatypes.JSON) string {
	if len(images) == 0 {
		return ""
	}
	var urls []string
	if err := json.Unmarshal(images, &urls); err != nil {
		return ""
	}
	return strings.Join(urls, ";")
}

func cellToImages(cell string) datatypes.JSON {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	urls := strings.Split(cell, ";")
	raw, err := json.Marshal(urls)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// ============================================================
// daily_mosque_report
// ============================================================

// ReportToInternal memetakan satu baris sheet ke model internal.
// Field numerik yang hilang/rusak jadi 0, teks jadi string kosong,
// status tak dikenal jadi Pending.
func ReportToInternal(row map[string]any) reportModel.DailyReportModel {
	return reportModel.DailyReportModel{
		ReportID:             cellString(row, keyReportID),
		ReportMosqueID:       cellString(row, keyReportMosque),
		ReportDayCode:        cellString(row, keyReportDay),
		ReportSupervisorName: cellString(row, keyReportSupervisor),
		Prayer: reportModel.PrayerStats{
			MaleWorshippers:   cellInt(row, keyMaleWorshippers),
			FemaleWorshippers: cellInt(row, keyFemaleWorshippers),
		},
		Iftar: reportModel.IftarStats{
			IftarMealsActual: cellInt(row, keyIftarMealsActual),
		},
		Water: reportModel.WaterStats{
			WaterCartons: cellInt(row, keyWaterCartons),
		},
		Hospitality: reportModel.HospitalityStats{
			HospitalityBeneficiaries: cellInt(row, keyHospitality),
		},
		Education: reportModel.EducationStats{
			MaleStudents:       cellInt(row, keyMaleStudents),
			MaleStudentPages:   cellInt(row, keyMaleStudentPages),
			FemaleStudents:     cellInt(row, keyFemaleStudents),
			FemaleStudentPages: cellInt(row, keyFemaleStudentPages),
		},
		Community: reportModel.CommunityStats{
			Volunteers:                    cellInt(row, keyVolunteers),
			Competitions:                  cellInt(row, keyCompetitions),
			NurseryChildren:               cellInt(row, keyNurseryChildren),
			CommunityProgramBeneficiaries: cellInt(row, keyCommunityBenef),
			ProgramName:                   cellString(row, keyProgramName),
			ProgramDescription:            cellString(row, keyProgramDescription),
		},
		Dawah: reportModel.DawahStats{
			MaleDawahTalks:     cellInt(row, keyMaleDawahTalks),
			FemaleDawahTalks:   cellInt(row, keyFemaleDawahTalks),
			DawahBeneficiaries: cellInt(row, keyDawahBeneficiaries),
		},
		Itikaf: reportModel.ItikafStats{
			MaleItikafParticipants:   cellInt(row, keyMaleItikaf),
			MaleSuhoorMeals:          cellInt(row, keyMaleSuhoor),
			FemaleItikafParticipants: cellInt(row, keyFemaleItikaf),
			FemaleSuhoorMeals:        cellInt(row, keyFemaleSuhoor),
		},
		General: reportModel.GeneralStats{
			SupervisorsCount: cellInt(row, keySupervisorsCount),
		},
		ReportNotes:  cellString(row, keyNotes),
		ReportImages: cellToImages(cellString(row, keyImages)),
		ReportStatus: constants.ParseStatus(cellString(row, keyStatus)),
	}
}

// ReportToExternal memetakan model internal ke baris sheet.
// Key id hanya ikut kalau laporan sudah punya id (membedakan create vs update).
func ReportToExternal(r *reportModel.DailyReportModel) map[string]any {
	row := map[string]any{
		keyReportMosque:     r.ReportMosqueID,
		keyReportDay:        r.ReportDayCode,
		keyReportSupervisor: r.ReportSupervisorName,

		keyMaleWorshippers:   r.Prayer.MaleWorshippers,
		keyFemaleWorshippers: r.Prayer.FemaleWorshippers,

		keyIftarMealsActual: r.Iftar.IftarMealsActual,
		keyWaterCartons:     r.Water.WaterCartons,
		keyHospitality:      r.Hospitality.HospitalityBeneficiaries,

		keyMaleStudents:       r.Education.MaleStudents,
		keyMaleStudentPages:   r.Education.MaleStudentPages,
		keyFemaleStudents:     r.Education.FemaleStudents,
		keyFemaleStudentPages: r.Education.FemaleStudentPages,

		keyVolunteers:         r.Community.Volunteers,
		keyCompetitions:       r.Community.Competitions,
		keyNurseryChildren:    r.Community.NurseryChildren,
		keyCommunityBenef:     r.Community.CommunityProgramBeneficiaries,
		keyProgramName:        r.Community.ProgramName,
		keyProgramDescription: r.Community.ProgramDescription,

		keyMaleDawahTalks:     r.Dawah.MaleDawahTalks,
		keyFemaleDawahTalks:   r.Dawah.FemaleDawahTalks,
		keyDawahBeneficiaries: r.Dawah.DawahBeneficiaries,

		keyMaleItikaf:   r.Itikaf.MaleItikafParticipants,
		keyMaleSuhoor:   r.Itikaf.MaleSuhoorMeals,
		keyFemaleItikaf: r.Itikaf.FemaleItikafParticipants,
		keyFemaleSuhoor: r.Itikaf.FemaleSuhoorMeals,

		keySupervisorsCount: r.General.SupervisorsCount,
		keyNotes:            r.ReportNotes,
		keyImages:           imagesToCell(r.ReportImages),
		keyStatus:           r.ReportStatus,
	}
	if r.ReportID != "" {
		row[keyReportID] = r.ReportID
	}
	return row
}

// ============================================================
// mosque & Dayd
// ============================================================

func MosqueToInternal(row map[string]any) mosqueModel.MosqueModel {
	return mosqueModel.MosqueModel{
		MosqueID:                     cellString(row, keyMosqueID),
		MosqueName:                   cellString(row, keyMosqueName),
		MosqueSupervisorPasswordHash: cellString(row, keyMosquePasswordHash),
	}
}

func DayToInternal(row map[string]any) constants.Day {
	return constants.Day{
		Code:  cellString(row, keyDayCode),
		Label: cellString(row, keyDayLabel),
	}
}

// ============================================================
// volunteer
// ============================================================

func VolunteerToInternal(row map[string]any) volunteerModel.VolunteerModel {
	return volunteerModel.VolunteerModel{
		VolunteerID:                   cellString(row, keyVolID),
		VolunteerFullName:             cellString(row, keyVolFullName),
		VolunteerNationality:          cellString(row, keyVolNationality),
		VolunteerIDNumber:             cellString(row, keyVolIDNumber),
		VolunteerProfession:           cellString(row, keyVolProfession),
		VolunteerAge:                  cellInt(row, keyVolAge),
		VolunteerWorkOrStudyPlace:     cellString(row, keyVolWorkPlace),
		VolunteerIDExpiryStatus:       cellString(row, keyVolIDExpiry),
		VolunteerRequiresSponsor:      cellString(row, keyVolSponsor),
		VolunteerPhoneNumber:          cellString(row, keyVolPhone),
		VolunteerRelativePhoneNumber:  cellString(row, keyVolRelativePhone),
		VolunteerEmail:                cellString(row, keyVolEmail),
		VolunteerField:                cellString(row, keyVolField),
		VolunteerDirectSupervisor:     cellString(row, keyVolSupervisor),
		VolunteerDailyHours:           cellInt(row, keyVolDailyHours),
		VolunteerRecordHours:          cellString(row, keyVolRecordHours),
		VolunteerFutureRecommendation: cellString(row, keyVolRecommendation),
		VolunteerNotes:                cellString(row, keyVolNotes),
	}
}

func VolunteerToExternal(v *volunteerModel.VolunteerModel) map[string]any {
	row := map[string]any{
		keyVolFullName:       v.VolunteerFullName,
		keyVolNationality:    v.VolunteerNationality,
		keyVolIDNumber:       v.VolunteerIDNumber,
		keyVolProfession:     v.VolunteerProfession,
		keyVolAge:            v.VolunteerAge,
		keyVolWorkPlace:      v.VolunteerWorkOrStudyPlace,
		keyVolIDExpiry:       v.VolunteerIDExpiryStatus,
		keyVolSponsor:        v.VolunteerRequiresSponsor,
		keyVolPhone:          v.VolunteerPhoneNumber,
		keyVolRelativePhone:  v.VolunteerRelativePhoneNumber,
		keyVolEmail:          v.VolunteerEmail,
		keyVolField:          v.VolunteerField,
		keyVolSupervisor:     v.VolunteerDirectSupervisor,
		keyVolDailyHours:     v.VolunteerDailyHours,
		keyVolRecordHours:    v.VolunteerRecordHours,
		keyVolRecommendation: v.VolunteerFutureRecommendation,
		keyVolNotes:          v.VolunteerNotes,
	}
	if v.VolunteerID != "" {
		row[keyVolID] = v.VolunteerID
	}
	return row
}

// ============================================================
// maintenance_report
// ============================================================

func MaintenanceToInternal(row map[string]any) maintenanceModel.MaintenanceReportModel {
	return maintenanceModel.MaintenanceReportModel{
		MaintenanceID:              cellString(row, keyMaintID),
		MaintenanceMosqueID:        cellString(row, keyMaintMosque),
		MaintenanceDayCode:         cellString(row, keyMaintDay),
		MaintenanceSupervisorName:  cellString(row, keyMaintSupervisor),
		MaintenanceCleaningDone:    cellBool(row, keyMaintCleaning),
		MaintenanceMaintenanceDone: cellBool(row, keyMaintWork),
		MaintenanceNeeds:           cellString(row, keyMaintNeeds),
		MaintenanceStatus:          constants.ParseStatus(cellString(row, keyMaintStatus)),
	}
}

func MaintenanceToExternal(m *maintenanceModel.MaintenanceReportModel) map[string]any {
	row := map[string]any{
		keyMaintMosque:     m.MaintenanceMosqueID,
		keyMaintDay:        m.MaintenanceDayCode,
		keyMaintSupervisor: m.MaintenanceSupervisorName,
		keyMaintCleaning:   yesNo(m.MaintenanceCleaningDone),
		keyMaintWork:       yesNo(m.MaintenanceMaintenanceDone),
		keyMaintNeeds:      m.MaintenanceNeeds,
		keyMaintStatus:     m.MaintenanceStatus,
	}
	if m.MaintenanceID != "" {
		row[keyMaintID] = m.MaintenanceID
	}
	return row
}
