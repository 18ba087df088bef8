package handler

import (
	"net/http"
	"strconv"

	"docrech/internal/delivery/dto"
	"docrech/internal/usecase"
	"docrech/pkg/response"
	"docrech/pkg/validator"
)

const defaultPopularLimit = 10

type CatalogHandler struct {
	catalogUsecase   usecase.CatalogUsecase
	analyticsUsecase usecase.SearchAnalyticsUsecase
	validator        *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, analyticsUsecase usecase.SearchAnalyticsUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase:   catalogUsecase,
		analyticsUsecase: analyticsUsecase,
		validator:        validator,
	}
}

// GetCategories handles the home screen entries
// @Summary List home categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /categories [get]
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Categories retrieved successfully", h.catalogUsecase.Categories())
}

// GetPopularSearches handles the most searched terms of a listing
// @Summary Popular search terms
// @Tags Catalog
// @Produce json
// @Param listing query string true "specialties, diseases, doctors or pharmacies"
// @Param limit query int false "Number of terms" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /search/popular [get]
func (h *CatalogHandler) GetPopularSearches(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := dto.PopularSearchQuery{
		Listing: params.Get("listing"),
		Limit:   defaultPopularLimit,
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		query.Limit = limit
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	terms, err := h.analyticsUsecase.Popular(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get popular searches")
		return
	}

	response.Success(w, http.StatusOK, "Popular searches retrieved successfully", terms)
}
