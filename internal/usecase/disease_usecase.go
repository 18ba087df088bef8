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

type DiseaseUsecase interface {
	List(ctx context.Context, query *dto.ListQuery) (*dto.DiseaseListResponse, error)
}

type diseaseUsecase struct {
	log         *logrus.Logger
	diseaseRepo repository.DiseaseRepository
	analytics   SearchAnalyticsUsecase
}

func NewDiseaseUsecase(log *logrus.Logger, diseaseRepo repository.DiseaseRepository, analytics SearchAnalyticsUsecase) DiseaseUsecase {
	return &diseaseUsecase{
		log:         log,
		diseaseRepo: diseaseRepo,
		analytics:   analytics,
	}
}

func diseaseSearchFields(d *entity.Disease) []*string {
	return []*string{&d.Name, &d.Description}
}

func (u *diseaseUsecase) List(ctx context.Context, query *dto.ListQuery) (*dto.DiseaseListResponse, error) {
	diseases, err := u.diseaseRepo.FindAll(ctx)
	if err != nil {
		logFetchFailure(u.log, entity.ListingDiseases, err)
		diseases = nil
	}

	u.analytics.Record(ctx, entity.ListingDiseases, query.Search)

	filtered := search.Filter(diseases, query.Search, diseaseSearchFields)
	return &dto.DiseaseListResponse{
		Diseases: converter.DiseasesToResponses(filtered),
		Total:    len(filtered),
		Search:   query.Search,
	}, nil
}
