package converter

import (
	"fmt"

	"docrech/internal/delivery/dto"
	"docrech/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorsPath is the doctor listing narrowed to one specialty
func DoctorsPath(specialtyID uuid.UUID) string {
	return fmt.Sprintf("/doctors?specialty=%s", specialtyID)
}

func SpecialtyToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil {
		return nil
	}

	return &dto.SpecialtyResponse{
		ID:          specialty.ID,
		Name:        specialty.Name,
		Icon:        specialty.Icon,
		DoctorCount: specialty.DoctorCount,
		DoctorsPath: DoctorsPath(specialty.ID),
	}
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		responses[i] = *SpecialtyToResponse(&specialties[i])
	}
	return responses
}
