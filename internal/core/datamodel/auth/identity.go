package auth

import "time"

// Identity holds login credentials for one faculty account. Deleting the row
// is what "revoking the identity" means; profile data lives in the faculty table.
type Identity struct {
	FacultyID    int64     `gorm:"primaryKey;column:faculty_id"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Identity) TableName() string {
	return "auth_identities"
}
