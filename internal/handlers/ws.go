package handlers

import (
	"log/slog"
	"net/http"

	"github.com/eldon922/ekklesia-be/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      Subscribe to live roster updates for one event
// @Tags         websocket
// @Param        id path int true "Event ID"
// @Router       /ws/event/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade error", "err", err)
		return
	}

	h.hub.AddConnection(eventID, conn)
	defer h.hub.RemoveConnection(eventID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
