package converter

import (
	"docrech/internal/delivery/dto"
	"docrech/internal/domain/entity"
)

func CategoriesToResponses(categories []entity.Category) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = dto.CategoryResponse{
			Key:         category.Key,
			Title:       category.Title,
			Description: category.Description,
			Path:        category.Path,
		}
	}
	return responses
}

func SearchTermsToResponses(terms []entity.SearchTerm) []dto.SearchTermResponse {
	responses := make([]dto.SearchTermResponse, len(terms))
	for i, term := range terms {
		responses[i] = dto.SearchTermResponse{Term: term.Term, Count: term.Count}
	}
	return responses
}
