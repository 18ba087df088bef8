package repository

import (
	"context"

	"docrech/internal/domain/entity"

	"github.com/google/uuid"
)

type DiseaseRepository interface {
	FindAll(ctx context.Context) ([]entity.Disease, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Disease, error)
}
