package repository

import (
	"context"
	"errors"

	"docrech/internal/domain/entity"
	domainRepo "docrech/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func preloadSpecialtyCard(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "icon")
}

// FindAll returns doctors ordered by last name.
// Supports an optional equality filter on the specialty.
func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := r.db.WithContext(ctx).Preload("Specialty", preloadSpecialtyCard)

	if filter != nil && filter.SpecialtyID != nil {
		query = query.Where("specialty_id = ?", *filter.SpecialtyID)
	}

	err := query.Order("last_name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).
		Preload("Specialty", preloadSpecialtyCard).
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
