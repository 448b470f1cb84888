package handlers

import (
	"net/http"

	"github.com/Dosada05/event-console/services"
	"github.com/go-chi/chi/v5"
)

type SubmissionHandler struct {
	submissionService services.SubmissionService
}

func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Preview отдаёт собранную полезную нагрузку для экрана Review,
// не отправляя её.
func (h *SubmissionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	payload, err := h.submissionService.Assemble(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"payload": payload}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	eventID, err := h.submissionService.Submit(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"event_id": eventID}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
