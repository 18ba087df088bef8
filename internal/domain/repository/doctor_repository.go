package repository

import (
	"context"

	"docrech/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
}
