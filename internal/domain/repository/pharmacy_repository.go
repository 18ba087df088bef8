package repository

import (
	"context"

	"docrech/internal/domain/entity"
)

type PharmacyRepository interface {
	FindAll(ctx context.Context) ([]entity.Pharmacy, error)
}
