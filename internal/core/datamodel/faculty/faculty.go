package faculty

import "time"

// Faculty is the persistence shape of a faculty account. Column names keep
// the faculty_ prefix used by the hosted schema this service replaced.
type Faculty struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"column:faculty_name;not null"`
	Department string    `gorm:"column:faculty_department;not null"`
	Role       string    `gorm:"column:faculty_role;not null;default:staff"`
	Email      string    `gorm:"column:faculty_email;uniqueIndex;not null"`
	Phone      string    `gorm:"column:faculty_phone"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Faculty) TableName() string {
	return "faculty"
}
