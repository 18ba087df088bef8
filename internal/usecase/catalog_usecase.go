package usecase

import (
	"docrech/internal/converter"
	"docrech/internal/delivery/dto"
	"docrech/internal/domain/entity"
)

// homeCategories are the entry points of the home screen, in display order
var homeCategories = []entity.Category{
	{
		Key:         entity.ListingSpecialties,
		Title:       "Spécialités",
		Description: "Rechercher par spécialité médicale",
		Path:        "/specialties",
	},
	{
		Key:         entity.ListingDiseases,
		Title:       "Maladies",
		Description: "Rechercher par symptômes ou maladie",
		Path:        "/diseases",
	},
	{
		Key:         entity.ListingPharmacies,
		Title:       "Pharmacies",
		Description: "Trouver une pharmacie proche",
		Path:        "/pharmacies",
	},
}

type CatalogUsecase interface {
	Categories() []dto.CategoryResponse
}

type catalogUsecase struct{}

func NewCatalogUsecase() CatalogUsecase {
	return &catalogUsecase{}
}

func (u *catalogUsecase) Categories() []dto.CategoryResponse {
	return converter.CategoriesToResponses(homeCategories)
}
