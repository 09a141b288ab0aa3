package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/gms-project/gms-backend/schedule"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub    *schedule.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(hub *schedule.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// Subscribe upgrades the connection and joins the competition's event room.
// GET /ws/competitions/{competitionID}
func (h *WebSocketHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	competitionID, err := strconv.Atoi(chi.URLParam(r, "competitionID"))
	if err != nil || competitionID < 1 {
		http.Error(w, "invalid competition id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := &schedule.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: strconv.Itoa(competitionID),
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
