package handler

import (
	"net/http"

	"docrech/internal/delivery/dto"
	"docrech/internal/usecase"
	"docrech/pkg/response"
	"docrech/pkg/validator"
)

type PharmacyHandler struct {
	pharmacyUsecase usecase.PharmacyUsecase
	validator       *validator.CustomValidator
}

func NewPharmacyHandler(pharmacyUsecase usecase.PharmacyUsecase, validator *validator.CustomValidator) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUsecase: pharmacyUsecase,
		validator:       validator,
	}
}

// GetAll handles the pharmacy listing
// @Summary List pharmacies
// @Description List pharmacies with opening hours and 24h service, filtered by name or address
// @Tags Pharmacies
// @Produce json
// @Param search query string false "Case-insensitive name or address filter"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /pharmacies [get]
func (h *PharmacyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.ListQuery{Search: r.URL.Query().Get("search")}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pharmacies, err := h.pharmacyUsecase.List(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get pharmacies")
		return
	}

	response.Success(w, http.StatusOK, "Pharmacies retrieved successfully", pharmacies)
}
