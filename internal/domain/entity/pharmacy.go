package entity

import "github.com/google/uuid"

type Pharmacy struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Address      string    `gorm:"type:text;not null" json:"address"`
	PhoneNumber  string    `gorm:"type:varchar(50);not null" json:"phone_number"`
	OpeningHours *string   `gorm:"type:text" json:"opening_hours"`
	Is24h        bool      `gorm:"column:is_24h;not null;default:false" json:"is_24h"`
}

func (Pharmacy) TableName() string {
	return "pharmacies"
}
