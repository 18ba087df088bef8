package repository

import (
	"context"

	"docrech/internal/domain/entity"

	"github.com/google/uuid"
)

type SpecialtyRepository interface {
	FindAll(ctx context.Context) ([]entity.Specialty, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Specialty, error)
}
