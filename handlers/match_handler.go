package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

type matchRequest struct {
	Boxer1ID       string `json:"boxer1_id" validate:"required"`
	Boxer2ID       string `json:"boxer2_id" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	Gender         string `json:"gender" validate:"required,oneof=male female"`
	CatalogEntryID string `json:"catalog_entry_id" validate:"required"`
}

func (h *MatchHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input matchRequest
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

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		badRequestResponse(w, r, errors.New("date must use the YYYY-MM-DD format"))
		return
	}
	timeOfDay, err := time.Parse("15:04", input.Time)
	if err != nil {
		badRequestResponse(w, r, errors.New("time must use the HH:MM format"))
		return
	}

	match, err := h.matchService.Add(r.Context(), chi.URLParam(r, "draftID"), services.MatchInput{
		Boxer1ID:       input.Boxer1ID,
		Boxer2ID:       input.Boxer2ID,
		Date:           day,
		Hour:           timeOfDay.Hour(),
		Minute:         timeOfDay.Minute(),
		Gender:         models.Gender(input.Gender),
		CatalogEntryID: input.CatalogEntryID,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.matchService.Remove(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "matchID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListByDate отдаёт бои одного календарного дня в порядке добавления —
// источник данных для ячейки календаря и дневного списка.
func (h *MatchHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	day, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		badRequestResponse(w, r, errors.New("query parameter date must use the YYYY-MM-DD format"))
		return
	}

	seq, err := h.matchService.ByDate(r.Context(), chi.URLParam(r, "draftID"), day)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	matches := make([]models.Match, 0)
	for match := range seq {
		matches = append(matches, match)
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
