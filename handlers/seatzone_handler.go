package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/event-console/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type SeatZoneHandler struct {
	seatZoneService services.SeatZoneService
}

func NewSeatZoneHandler(seatZoneService services.SeatZoneService) *SeatZoneHandler {
	return &SeatZoneHandler{seatZoneService: seatZoneService}
}

type seatZoneRequest struct {
	Name      string  `json:"name" validate:"required"`
	SeatCount int     `json:"seat_count" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

func (h *SeatZoneHandler) Add(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decode(w, r)
	if !ok {
		return
	}

	zone, err := h.seatZoneService.Add(r.Context(), chi.URLParam(r, "draftID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"seat_zone": zone}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SeatZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decode(w, r)
	if !ok {
		return
	}

	zone, err := h.seatZoneService.Update(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "zoneID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"seat_zone": zone}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SeatZoneHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.seatZoneService.Remove(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "zoneID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SeatZoneHandler) decode(w http.ResponseWriter, r *http.Request) (services.SeatZoneInput, bool) {
	var input seatZoneRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return services.SeatZoneInput{}, false
	}
	if err := validator.New().Struct(input); err != nil {
		var validateErrs validator.ValidationErrors
		errors.As(err, &validateErrs)
		failedValidationResponse(w, r, validateErrs)
		return services.SeatZoneInput{}, false
	}
	return services.SeatZoneInput{
		Name:      input.Name,
		SeatCount: input.SeatCount,
		Price:     input.Price,
	}, true
}
