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

type PharmacyUsecase interface {
	List(ctx context.Context, query *dto.ListQuery) (*dto.PharmacyListResponse, error)
}

type pharmacyUsecase struct {
	log          *logrus.Logger
	pharmacyRepo repository.PharmacyRepository
	analytics    SearchAnalyticsUsecase
}

func NewPharmacyUsecase(log *logrus.Logger, pharmacyRepo repository.PharmacyRepository, analytics SearchAnalyticsUsecase) PharmacyUsecase {
	return &pharmacyUsecase{
		log:          log,
		pharmacyRepo: pharmacyRepo,
		analytics:    analytics,
	}
}

func pharmacySearchFields(p *entity.Pharmacy) []*string {
	return []*string{&p.Name, &p.Address}
}

func (u *pharmacyUsecase) List(ctx context.Context, query *dto.ListQuery) (*dto.PharmacyListResponse, error) {
	pharmacies, err := u.pharmacyRepo.FindAll(ctx)
	if err != nil {
		logFetchFailure(u.log, entity.ListingPharmacies, err)
		pharmacies = nil
	}

	u.analytics.Record(ctx, entity.ListingPharmacies, query.Search)

	filtered := search.Filter(pharmacies, query.Search, pharmacySearchFields)
	return &dto.PharmacyListResponse{
		Pharmacies: converter.PharmaciesToResponses(filtered),
		Total:      len(filtered),
		Search:     query.Search,
	}, nil
}
