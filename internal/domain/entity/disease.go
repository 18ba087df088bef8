package entity

import "github.com/google/uuid"

// Disease represents a named condition handled by one specialty
type Disease struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	SpecialtyID uuid.UUID `gorm:"type:uuid;not null;index" json:"specialty_id"`

	// Relationships
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Disease) TableName() string {
	return "diseases"
}
