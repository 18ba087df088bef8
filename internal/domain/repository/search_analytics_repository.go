package repository

import (
	"context"

	"docrech/internal/domain/entity"
)

// SearchAnalyticsRepository counts search terms per listing
type SearchAnalyticsRepository interface {
	Record(ctx context.Context, listing, term string) error
	Popular(ctx context.Context, listing string, limit int) ([]entity.SearchTerm, error)
}
