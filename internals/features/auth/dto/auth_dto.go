package dto

// AdminLoginRequest: admin login pakai satu password instansi.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// SupervisorLoginRequest: supervisor login per masjid. Nama yang diisi
// ikut tertera di laporan yang dia buat.
type SupervisorLoginRequest struct {
	MosqueID       string `json:"mosque_id" validate:"required"`
	SupervisorName string `json:"supervisor_name" validate:"required"`
	Password       string `json:"password" validate:"required"`
}

// LoginResponse dikirim balik setelah login sukses. Token juga diset
// sebagai cookie access_token.
type LoginResponse struct {
	AccessToken    string `json:"access_token"`
	Role           string `json:"role"`
	MosqueID       string `json:"mosque_id,omitempty"`
	SupervisorName string `json:"supervisor_name,omitempty"`
}
