package constants

import "fmt"

// Day adalah satu hari pelaporan di bulan Ramadhan (data referensi statis).
type Day struct {
	Code  string `json:"day_code"`
	Label string `json:"day_label"`
}

// RamadanDays: 30 hari, kode d1..d30.
var RamadanDays = buildRamadanDays()

func buildRamadanDays() []Day {
	days := make([]Day, 0, 30)
	for i := 1; i <= 30; i++ {
		days = append(days, Day{
			Code:  fmt.Sprintf("d%d", i),
			Label: fmt.Sprintf("اليوم %d من رمضان", i),
		})
	}
	return days
}

func IsValidDayCode(code string) bool {
	for _, d := range RamadanDays {
		if d.Code == code {
			return true
		}
	}
	return false
}
