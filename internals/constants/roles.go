package constants

import "fmt"

const (
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySupervisorsCanAccess = "❌ Hanya supervisor atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSupervisor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
