package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/event-console/backend"
	"github.com/Dosada05/event-console/catalog"
	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/services"
	"github.com/go-chi/chi/v5"
)

// ReferenceHandler отдаёт справочные данные: снимок боксёров/площадок
// сессии, каталог весовых категорий и разрешение изображений.
type ReferenceHandler struct {
	draftService   services.DraftService
	refDataService services.RefDataService
	catalog        catalog.Provider
	api            backend.Client
}

func NewReferenceHandler(
	draftService services.DraftService,
	refDataService services.RefDataService,
	provider catalog.Provider,
	api backend.Client,
) *ReferenceHandler {
	return &ReferenceHandler{
		draftService:   draftService,
		refDataService: refDataService,
		catalog:        provider,
		api:            api,
	}
}

func (h *ReferenceHandler) GetDraftReference(w http.ResponseWriter, r *http.Request) {
	draft, err := h.draftService.GetByID(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"reference": draft.Reference}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ReferenceHandler) RetryLoad(w http.ResponseWriter, r *http.Request) {
	if err := h.refDataService.Retry(r.Context(), chi.URLParam(r, "draftID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "loaded"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ReferenceHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	gender := models.Gender(r.URL.Query().Get("gender"))

	entries, err := h.catalog.List(gender)
	if err != nil {
		if errors.Is(err, catalog.ErrGenderRequired) {
			badRequestResponse(w, r, errors.New("query parameter gender must be male or female"))
			return
		}
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"catalog": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResolveImage проксирует разрешение ссылки на изображение; ядром мастера
// не используется, нужен только для отображения.
func (h *ReferenceHandler) ResolveImage(w http.ResponseWriter, r *http.Request) {
	url, err := h.api.ResolveImage(r.Context(), chi.URLParam(r, "assetRef"))
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"url": url}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
