package converter

import (
	"fmt"

	"docrech/internal/delivery/dto"
	"docrech/internal/domain/entity"
)

func DiseaseToResponse(disease *entity.Disease) *dto.DiseaseResponse {
	if disease == nil {
		return nil
	}

	response := &dto.DiseaseResponse{
		ID:          disease.ID,
		Name:        disease.Name,
		Description: disease.Description,
		SpecialtyID: disease.SpecialtyID,
		DoctorsPath: fmt.Sprintf("%s&disease=%s", DoctorsPath(disease.SpecialtyID), disease.ID),
	}
	if disease.Specialty != nil {
		response.SpecialtyName = disease.Specialty.Name
	}
	return response
}

func DiseasesToResponses(diseases []entity.Disease) []dto.DiseaseResponse {
	responses := make([]dto.DiseaseResponse, len(diseases))
	for i := range diseases {
		responses[i] = *DiseaseToResponse(&diseases[i])
	}
	return responses
}
