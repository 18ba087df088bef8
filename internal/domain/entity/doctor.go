package entity

import "github.com/google/uuid"

// Doctor represents a practitioner listed in the directory
type Doctor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null;index" json:"last_name"`
	Photo       *string   `gorm:"type:text" json:"photo"`
	SpecialtyID uuid.UUID `gorm:"type:uuid;not null;index" json:"specialty_id"`
	Hospital    string    `gorm:"type:varchar(255);not null" json:"hospital"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	PhoneNumber string    `gorm:"type:varchar(50);not null" json:"phone_number"`
	Description *string   `gorm:"type:text" json:"description"`

	// Relationships
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
