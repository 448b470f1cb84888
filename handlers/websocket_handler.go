package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/event-console/notify"
	"github.com/Dosada05/event-console/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub    *notify.Hub
	drafts repositories.DraftRepository
	logger *slog.Logger
}

func NewWebSocketHandler(hub *notify.Hub, drafts repositories.DraftRepository, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, drafts: drafts, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Проверка Origin делегируется CORS-слою.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Subscribe подключает клиента к комнате уведомлений его сессии мастера.
func (h *WebSocketHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, "draftID")
	if !h.drafts.Exists(r.Context(), draftID) {
		notFoundResponse(w, r)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			slog.String("draft_id", draftID),
			slog.Any("error", err))
		return
	}

	h.hub.Register(notify.NewClient(h.hub, conn, draftID))
}
