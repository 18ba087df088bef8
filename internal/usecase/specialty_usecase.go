package usecase

import (
	"context"

	"docrech/internal/converter"
	"docrech/internal/delivery/dto"
	"docrech/internal/domain/entity"
	"docrech/internal/domain/repository"
	"docrech/pkg/search"

	"github.com/sirupsen/logrus"
)

type SpecialtyUsecase interface {
	List(ctx context.Context, query *dto.ListQuery) (*dto.SpecialtyListResponse, error)
}

type specialtyUsecase struct {
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	analytics     SearchAnalyticsUsecase
}

func NewSpecialtyUsecase(log *logrus.Logger, specialtyRepo repository.SpecialtyRepository, analytics SearchAnalyticsUsecase) SpecialtyUsecase {
	return &specialtyUsecase{
		log:           log,
		specialtyRepo: specialtyRepo,
		analytics:     analytics,
	}
}

func specialtySearchFields(s *entity.Specialty) []*string {
	return []*string{&s.Name}
}

func (u *specialtyUsecase) List(ctx context.Context, query *dto.ListQuery) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(ctx)
	if err != nil {
		logFetchFailure(u.log, entity.ListingSpecialties, err)
		specialties = nil
	}

	u.analytics.Record(ctx, entity.ListingSpecialties, query.Search)

	filtered := search.Filter(specialties, query.Search, specialtySearchFields)
	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(filtered),
		Total:       len(filtered),
		Search:      query.Search,
	}, nil
}
