package converter

import (
	"docrech/internal/delivery/dto"
	"docrech/internal/domain/entity"
	"docrech/pkg/contact"
)

// DoctorToResponse converts a Doctor entity to the card DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:          doctor.ID,
		FirstName:   doctor.FirstName,
		LastName:    doctor.LastName,
		FullName:    doctor.FullName(),
		Initials:    contact.Initials(doctor.FirstName, doctor.LastName),
		Photo:       doctor.Photo,
		Hospital:    doctor.Hospital,
		Address:     doctor.Address,
		PhoneNumber: doctor.PhoneNumber,
		Description: doctor.Description,
		DetailPath:  "/doctor/" + doctor.ID.String(),
	}
	if doctor.Specialty != nil {
		response.Specialty = &dto.SpecialtySummary{
			ID:   doctor.Specialty.ID,
			Name: doctor.Specialty.Name,
			Icon: doctor.Specialty.Icon,
		}
	}
	return response
}

// DoctorsToResponses converts a slice of Doctor entities to card DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToDetailResponse adds the call and WhatsApp links to the card DTO
func DoctorToDetailResponse(doctor *entity.Doctor, whatsAppCountryCode string) *dto.DoctorDetailResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorDetailResponse{
		DoctorResponse: *DoctorToResponse(doctor),
		CallURI:        contact.CallURI(doctor.PhoneNumber),
		WhatsAppURL:    contact.WhatsAppURL(doctor.PhoneNumber, whatsAppCountryCode),
	}
}
