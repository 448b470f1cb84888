package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxAssetBytes = 10 << 20 // 10MB

type DraftHandler struct {
	draftService services.DraftService
}

func NewDraftHandler(draftService services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

type createDraftRequest struct {
	OrganizerID string `json:"organizer_id" validate:"required"`
}

func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createDraftRequest
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

	draft, err := h.draftService.Create(r.Context(), services.CreateDraftInput{
		OrganizerID: input.OrganizerID,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	draft, err := h.draftService.GetByID(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DraftHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.draftService.Cancel(r.Context(), chi.URLParam(r, "draftID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type basicInfoRequest struct {
	Name        string `json:"name"`
	LocationID  string `json:"location_id"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

func (h *DraftHandler) UpdateBasicInfo(w http.ResponseWriter, r *http.Request) {
	var input basicInfoRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	draft, err := h.draftService.UpdateBasicInfo(r.Context(), chi.URLParam(r, "draftID"), services.BasicInfoInput{
		Name:        input.Name,
		LocationID:  input.LocationID,
		Level:       input.Level,
		Description: input.Description,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type scheduleRequest struct {
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	EventType      string `json:"event_type"`
	ConfirmDiscard bool   `json:"confirm_discard"`
}

func (h *DraftHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var input scheduleRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	serviceInput := services.ScheduleInput{
		EventType:      models.EventType(input.EventType),
		ConfirmDiscard: input.ConfirmDiscard,
	}
	for _, pair := range []struct {
		raw string
		dst **time.Time
	}{
		{input.StartDate, &serviceInput.StartDate},
		{input.EndDate, &serviceInput.EndDate},
	} {
		if pair.raw == "" {
			continue
		}
		parsed, err := time.Parse("2006-01-02", pair.raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("dates must use the YYYY-MM-DD format"))
			return
		}
		*pair.dst = &parsed
	}

	draft, err := h.draftService.UpdateSchedule(r.Context(), chi.URLParam(r, "draftID"), serviceInput)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DraftHandler) Advance(w http.ResponseWriter, r *http.Request) {
	step, err := h.draftService.Advance(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"step": int(step), "step_name": step.String()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DraftHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	step, exit, err := h.draftService.Retreat(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"step": int(step), "step_name": step.String(), "exit": exit}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DraftHandler) UploadPoster(w http.ResponseWriter, r *http.Request) {
	h.uploadAsset(w, r, h.draftService.AttachPoster)
}

func (h *DraftHandler) UploadSeatChart(w http.ResponseWriter, r *http.Request) {
	h.uploadAsset(w, r, h.draftService.AttachSeatChart)
}

func (h *DraftHandler) uploadAsset(
	w http.ResponseWriter,
	r *http.Request,
	attach func(ctx context.Context, id string, upload services.AssetUpload) (*models.EventDraft, error),
) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAssetBytes)
	if err := r.ParseMultipartForm(maxAssetBytes); err != nil {
		badRequestResponse(w, r, errors.New("request must be multipart form data with a file part"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequestResponse(w, r, errors.New("file part is required"))
		return
	}
	defer file.Close()

	draft, err := attach(r.Context(), chi.URLParam(r, "draftID"), services.AssetUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"draft": draft}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
