package handler

import (
	"errors"
	"net/http"

	"docrech/internal/delivery/dto"
	"docrech/internal/usecase"
	"docrech/pkg/response"
	"docrech/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// GetAll handles the doctor listing
// @Summary List doctors
// @Description List doctors ordered by last name, optionally narrowed to a specialty or to the specialty of a disease
// @Tags Doctors
// @Produce json
// @Param specialty query string false "Specialty ID"
// @Param disease query string false "Disease ID"
// @Param search query string false "Case-insensitive first name, last name or hospital filter"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := dto.DoctorListQuery{
		Search:      params.Get("search"),
		SpecialtyID: params.Get("specialty"),
		DiseaseID:   params.Get("disease"),
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.List(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetDoctor handles the doctor detail
// @Summary Get doctor by ID
// @Description Get a doctor with the call and WhatsApp links
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}
