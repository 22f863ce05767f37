package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/suenot/sporthub/realtime"
)

type WebSocketHandler struct {
	logger   *slog.Logger
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	// hubCtx outlives requests; client pumps must not stop when the upgrade request ends.
	hubCtx context.Context
}

// NewWebSocketHandler creates the handler. checkOrigin may be nil to accept any origin.
func NewWebSocketHandler(hubCtx context.Context, hub *realtime.Hub, checkOrigin func(r *http.Request) bool, logger *slog.Logger) *WebSocketHandler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		logger: logger,
		hub:    hub,
		hubCtx: hubCtx,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// ServeFilters подписывает клиента на обновления опций фильтра (/ws/filters).
func (h *WebSocketHandler) ServeFilters(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := realtime.NewClient(h.hub, conn, realtime.FiltersRoom)
	if !h.hub.Register(h.hubCtx, client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump(h.hubCtx)
}
