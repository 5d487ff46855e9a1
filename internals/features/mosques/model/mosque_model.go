package model

// MosqueModel adalah data referensi masjid. Dibuat lewat seeder,
// tidak pernah diubah selama operasi normal.
type MosqueModel struct {
	MosqueID   string `gorm:"column:mosque_id;primaryKey;type:varchar(64)" json:"mosque_id"`
	MosqueName string `gorm:"column:mosque_name;type:varchar(255);not null" json:"mosque_name"`

	// Hash bcrypt kredensial supervisor masjid. Tidak pernah keluar lewat JSON.
	MosqueSupervisorPasswordHash string `gorm:"column:mosque_supervisor_password_hash;type:varchar(100)" json:"-"`
}

// TableName override
func (MosqueModel) TableName() string {
	return "mosques"
}
