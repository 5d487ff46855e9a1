package constants

// Status laporan harian. Label Arab dipakai apa adanya di sheet eksternal,
// jadi string di bawah ini tidak boleh diubah satu byte pun.
const (
	StatusPending  = "قيد المراجعة"
	StatusApproved = "معتمد"
	StatusRejected = "مرفوض"
)

var AllStatuses = []string{
	StatusPending,
	StatusApproved,
	StatusRejected,
}

func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ParseStatus memetakan string status dari sumber eksternal.
// Nilai kosong atau tidak dikenal jatuh ke Pending.
func ParseStatus(s string) string {
	if IsValidStatus(s) {
		return s
	}
	return StatusPending
}
