package handler

import (
	"net/http"

	"docrech/internal/delivery/dto"
	"docrech/internal/usecase"
	"docrech/pkg/response"
	"docrech/pkg/validator"
)

type DiseaseHandler struct {
	diseaseUsecase usecase.DiseaseUsecase
	validator      *validator.CustomValidator
}

func NewDiseaseHandler(diseaseUsecase usecase.DiseaseUsecase, validator *validator.CustomValidator) *DiseaseHandler {
	return &DiseaseHandler{
		diseaseUsecase: diseaseUsecase,
		validator:      validator,
	}
}

// GetAll handles the disease listing
// @Summary List diseases
// @Description List diseases with their specialty, filtered by name or description
// @Tags Diseases
// @Produce json
// @Param search query string false "Case-insensitive name or description filter"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /diseases [get]
func (h *DiseaseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.ListQuery{Search: r.URL.Query().Get("search")}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diseases, err := h.diseaseUsecase.List(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get diseases")
		return
	}

	response.Success(w, http.StatusOK, "Diseases retrieved successfully", diseases)
}
