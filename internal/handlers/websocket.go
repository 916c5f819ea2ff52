package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/campushub/campus-hub/internal/database"
	"github.com/campushub/campus-hub/internal/middleware"
	"github.com/campushub/campus-hub/internal/observability"
	ws "github.com/campushub/campus-hub/internal/websocket"
)

type WebSocketHandler struct {
	hub      *ws.Hub
	repo     database.Repository
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *ws.Hub, repo database.Repository) *WebSocketHandler {
	return &WebSocketHandler{
		hub:  hub,
		repo: repo,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWebSocket upgrades the connection and hands it to the chat hub. The
// connection lives until the client leaves the chat view and closes it.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userID, _ := middleware.CurrentUser(c)

	user, err := h.repo.GetUser(userID.String())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.hub, conn, user.ID, user.DisplayName())

	h.hub.Register(client)
	observability.WSConnectionOpened()

	go client.WritePump()
	go func() {
		defer observability.WSConnectionClosed()
		client.ReadPump()
	}()
}
