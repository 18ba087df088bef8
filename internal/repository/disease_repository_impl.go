package repository

import (
	"context"
	"errors"

	"docrech/internal/domain/entity"
	domainRepo "docrech/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diseaseRepository struct {
	db *gorm.DB
}

func NewDiseaseRepository(db *gorm.DB) domainRepo.DiseaseRepository {
	return &diseaseRepository{db: db}
}

func preloadSpecialtyName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func (r *diseaseRepository) FindAll(ctx context.Context) ([]entity.Disease, error) {
	var diseases []entity.Disease
	err := r.db.WithContext(ctx).
		Preload("Specialty", preloadSpecialtyName).
		Order("name ASC").
		Find(&diseases).Error
	if err != nil {
		return nil, err
	}
	return diseases, nil
}

func (r *diseaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Disease, error) {
	var disease entity.Disease
	err := r.db.WithContext(ctx).
		Preload("Specialty", preloadSpecialtyName).
		Where("id = ?", id).
		First(&disease).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disease, nil
}
