package entity

import "github.com/google/uuid"

// Specialty is a medical field of practice. DoctorCount is derived by the
// listing query and never written back.
type Specialty struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	DoctorCount int64     `gorm:"column:doctor_count;->;-:migration" json:"doctor_count"`
}

func (Specialty) TableName() string {
	return "specialties"
}
