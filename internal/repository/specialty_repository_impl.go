package repository

import (
	"context"
	"errors"

	"docrech/internal/domain/entity"
	domainRepo "docrech/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const specialtyWithDoctorCount = "specialties.*, " +
	"(SELECT COUNT(*) FROM doctors WHERE doctors.specialty_id = specialties.id) AS doctor_count"

type specialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) domainRepo.SpecialtyRepository {
	return &specialtyRepository{db: db}
}

func (r *specialtyRepository) FindAll(ctx context.Context) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := r.db.WithContext(ctx).
		Model(&entity.Specialty{}).
		Select(specialtyWithDoctorCount).
		Order("specialties.name ASC").
		Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := r.db.WithContext(ctx).
		Model(&entity.Specialty{}).
		Select(specialtyWithDoctorCount).
		Where("specialties.id = ?", id).
		First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}
