package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type WeightClassHandler struct {
	weightClassService services.WeightClassService
}

func NewWeightClassHandler(weightClassService services.WeightClassService) *WeightClassHandler {
	return &WeightClassHandler{weightClassService: weightClassService}
}

type weightClassRequest struct {
	Gender         string `json:"gender" validate:"required,oneof=male female"`
	CatalogEntryID string `json:"catalog_entry_id" validate:"required"`
	MaxEnrollment  int    `json:"max_enrollment" validate:"required,gt=0"`
}

func (h *WeightClassHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input weightClassRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validator.New().Struct(input); err != nil {
		var validateErrs validator.ValidationErrors
		errors.As(err, &validateErrs)
		failedValidationResponse(w, r, validateErrs)
		return
	}

	class, err := h.weightClassService.Add(r.Context(), chi.URLParam(r, "draftID"), services.WeightClassInput{
		Gender:         models.Gender(input.Gender),
		CatalogEntryID: input.CatalogEntryID,
		MaxEnrollment:  input.MaxEnrollment,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"weight_class": class}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type updateWeightClassRequest struct {
	MaxEnrollment int `json:"max_enrollment" validate:"required,gt=0"`
	// Поля каталога присылаются только при явном перевыборе записи.
	Gender         string `json:"gender" validate:"omitempty,oneof=male female"`
	CatalogEntryID string `json:"catalog_entry_id"`
}

func (h *WeightClassHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input updateWeightClassRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validator.New().Struct(input); err != nil {
		var validateErrs validator.ValidationErrors
		errors.As(err, &validateErrs)
		failedValidationResponse(w, r, validateErrs)
		return
	}

	class, err := h.weightClassService.Update(
		r.Context(),
		chi.URLParam(r, "draftID"),
		chi.URLParam(r, "classID"),
		services.UpdateWeightClassInput{
			MaxEnrollment:  input.MaxEnrollment,
			Gender:         models.Gender(input.Gender),
			CatalogEntryID: input.CatalogEntryID,
		},
	)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"weight_class": class}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *WeightClassHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.weightClassService.Remove(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "classID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
