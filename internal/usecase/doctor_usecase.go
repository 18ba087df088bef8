package usecase

import (
	"context"
	"errors"

	"docrech/internal/converter"
	"docrech/internal/delivery/dto"
	"docrech/internal/domain/entity"
	"docrech/internal/domain/repository"
	"docrech/pkg/search"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("Médecin non trouvé")
)

type DoctorUsecase interface {
	List(ctx context.Context, query *dto.DoctorListQuery) (*dto.DoctorListResponse, error)
	Get(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error)
}

type doctorUsecase struct {
	log                 *logrus.Logger
	doctorRepo          repository.DoctorRepository
	diseaseRepo         repository.DiseaseRepository
	analytics           SearchAnalyticsUsecase
	whatsAppCountryCode string
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	diseaseRepo repository.DiseaseRepository,
	analytics SearchAnalyticsUsecase,
	whatsAppCountryCode string,
) DoctorUsecase {
	return &doctorUsecase{
		log:                 log,
		doctorRepo:          doctorRepo,
		diseaseRepo:         diseaseRepo,
		analytics:           analytics,
		whatsAppCountryCode: whatsAppCountryCode,
	}
}

func doctorSearchFields(d *entity.Doctor) []*string {
	return []*string{&d.FirstName, &d.LastName, &d.Hospital}
}

// parseOptionalID parses an already validated optional UUID
func parseOptionalID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// resolveSpecialty picks the specialty filter: the explicit one, else the
// specialty of the disease. A failed disease lookup means no filter.
func (u *doctorUsecase) resolveSpecialty(ctx context.Context, specialtyID, diseaseID *uuid.UUID) *uuid.UUID {
	if specialtyID != nil || diseaseID == nil {
		return specialtyID
	}

	disease, err := u.diseaseRepo.FindByID(ctx, *diseaseID)
	if err != nil {
		logFetchFailure(u.log, entity.ListingDiseases, err)
		return nil
	}
	if disease == nil {
		u.log.Warnf("Disease %s not found, listing all doctors", *diseaseID)
		return nil
	}
	return &disease.SpecialtyID
}

func (u *doctorUsecase) List(ctx context.Context, query *dto.DoctorListQuery) (*dto.DoctorListResponse, error) {
	diseaseID := parseOptionalID(query.DiseaseID)
	specialtyID := u.resolveSpecialty(ctx, parseOptionalID(query.SpecialtyID), diseaseID)

	doctors, err := u.doctorRepo.FindAll(ctx, &entity.DoctorFilter{SpecialtyID: specialtyID})
	if err != nil {
		logFetchFailure(u.log, entity.ListingDoctors, err)
		doctors = nil
	}

	u.analytics.Record(ctx, entity.ListingDoctors, query.Search)

	filtered := search.Filter(doctors, query.Search, doctorSearchFields)
	return &dto.DoctorListResponse{
		Doctors:     converter.DoctorsToResponses(filtered),
		Total:       len(filtered),
		Search:      query.Search,
		SpecialtyID: specialtyID,
		DiseaseID:   diseaseID,
	}, nil
}

// Get returns the doctor detail. A failed fetch is reported as not found.
func (u *doctorUsecase) Get(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		logFetchFailure(u.log, entity.ListingDoctors, err)
		return nil, ErrDoctorNotFound
	}
	if doctor == nil {
		u.log.Warnf("Doctor %s not found", doctorID)
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToDetailResponse(doctor, u.whatsAppCountryCode), nil
}
