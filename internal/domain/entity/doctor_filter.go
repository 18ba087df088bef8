package entity

import "github.com/google/uuid"

// DoctorFilter is a domain-level filter for querying doctors.
// Only equality on the specialty foreign key is applied server-side.
type DoctorFilter struct {
	SpecialtyID *uuid.UUID
}
