package usecase

import (
	"context"

	"docrech/internal/converter"
	"docrech/internal/delivery/dto"
	"docrech/internal/domain/repository"
	"docrech/pkg/search"

	"github.com/sirupsen/logrus"
)

type SearchAnalyticsUsecase interface {
	// Record counts a search term for a listing; empty terms are ignored
	Record(ctx context.Context, listing, term string)
	Popular(ctx context.Context, query *dto.PopularSearchQuery) (*dto.PopularSearchResponse, error)
}

type searchAnalyticsUsecase struct {
	log           *logrus.Logger
	analyticsRepo repository.SearchAnalyticsRepository
}

// NewSearchAnalyticsUsecase creates the analytics usecase.
// A nil repository turns recording into a no-op and reports no popular terms.
func NewSearchAnalyticsUsecase(log *logrus.Logger, analyticsRepo repository.SearchAnalyticsRepository) SearchAnalyticsUsecase {
	return &searchAnalyticsUsecase{
		log:           log,
		analyticsRepo: analyticsRepo,
	}
}

func (u *searchAnalyticsUsecase) Record(ctx context.Context, listing, term string) {
	if u.analyticsRepo == nil {
		return
	}
	normalized := search.Normalize(term)
	if normalized == "" {
		return
	}
	if err := u.analyticsRepo.Record(ctx, listing, normalized); err != nil {
		u.log.Warnf("Failed to record search term: %+v", err)
	}
}

func (u *searchAnalyticsUsecase) Popular(ctx context.Context, query *dto.PopularSearchQuery) (*dto.PopularSearchResponse, error) {
	response := &dto.PopularSearchResponse{
		Listing: query.Listing,
		Terms:   []dto.SearchTermResponse{},
	}
	if u.analyticsRepo == nil {
		return response, nil
	}

	terms, err := u.analyticsRepo.Popular(ctx, query.Listing, query.Limit)
	if err != nil {
		u.log.Warnf("Failed to read popular search terms: %+v", err)
		return nil, err
	}

	response.Terms = converter.SearchTermsToResponses(terms)
	return response, nil
}
