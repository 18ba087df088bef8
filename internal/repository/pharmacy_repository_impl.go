package repository

import (
	"context"

	"docrech/internal/domain/entity"
	domainRepo "docrech/internal/domain/repository"

	"gorm.io/gorm"
)

type pharmacyRepository struct {
	db *gorm.DB
}

func NewPharmacyRepository(db *gorm.DB) domainRepo.PharmacyRepository {
	return &pharmacyRepository{db: db}
}

func (r *pharmacyRepository) FindAll(ctx context.Context) ([]entity.Pharmacy, error) {
	var pharmacies []entity.Pharmacy
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&pharmacies).Error; err != nil {
		return nil, err
	}
	return pharmacies, nil
}
