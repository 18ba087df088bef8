package converter

import (
	"docrech/internal/delivery/dto"
	"docrech/internal/domain/entity"
	"docrech/pkg/contact"
)

func PharmacyToResponse(pharmacy *entity.Pharmacy) *dto.PharmacyResponse {
	if pharmacy == nil {
		return nil
	}

	return &dto.PharmacyResponse{
		ID:           pharmacy.ID,
		Name:         pharmacy.Name,
		Address:      pharmacy.Address,
		PhoneNumber:  pharmacy.PhoneNumber,
		OpeningHours: pharmacy.OpeningHours,
		Is24h:        pharmacy.Is24h,
		CallURI:      contact.CallURI(pharmacy.PhoneNumber),
	}
}

func PharmaciesToResponses(pharmacies []entity.Pharmacy) []dto.PharmacyResponse {
	responses := make([]dto.PharmacyResponse, len(pharmacies))
	for i := range pharmacies {
		responses[i] = *PharmacyToResponse(&pharmacies[i])
	}
	return responses
}
