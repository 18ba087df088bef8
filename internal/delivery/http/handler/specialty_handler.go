package handler

import (
	"net/http"

	"docrech/internal/delivery/dto"
	"docrech/internal/usecase"
	"docrech/pkg/response"
	"docrech/pkg/validator"
)

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
	validator        *validator.CustomValidator
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase, validator *validator.CustomValidator) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
		validator:        validator,
	}
}

// GetAll handles the specialty listing
// @Summary List specialties
// @Description List medical specialties with their doctor count, filtered by name
// @Tags Specialties
// @Produce json
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /specialties [get]
func (h *SpecialtyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.ListQuery{Search: r.URL.Query().Get("search")}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialties, err := h.specialtyUsecase.List(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
