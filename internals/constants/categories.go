package constants

// Sembilan kategori aktivitas pada laporan harian masjid.
const (
	CategoryPrayer      = "prayer"
	CategoryIftar       = "iftar"
	CategoryWater       = "water"
	CategoryHospitality = "hospitality"
	CategoryEducation   = "quran-education"
	CategoryCommunity   = "community"
	CategoryDawah       = "dawah"
	CategoryItikaf      = "itikaf"
	CategoryGeneral     = "general"
)

var AllCategories = []string{
	CategoryPrayer,
	CategoryIftar,
	CategoryWater,
	CategoryHospitality,
	CategoryEducation,
	CategoryCommunity,
	CategoryDawah,
	CategoryItikaf,
	CategoryGeneral,
}

func IsValidCategory(c string) bool {
	for _, v := range AllCategories {
		if v == c {
			return true
		}
	}
	return false
}
