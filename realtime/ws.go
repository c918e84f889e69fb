package realtime

import (
	"net/http"

	"fixify/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// clientFrame is what connected clients send: room membership changes only.
// The protocol is otherwise server push.
type clientFrame struct {
	Event  string `json:"event"`
	ChatID string `json:"chatId,omitempty"`
}

// ServeWS upgrades an authenticated request and joins the caller's user room.
// The read loop handles joinChat/leaveChat frames until the peer goes away.
func (h *Hub) ServeWS(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	uid := models.UserID(userID.(string))

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	// One lockedConn per session so publishes from different rooms never
	// write to the socket concurrently.
	sub := &lockedConn{c: ws}

	userRoom := UserRoom(uid)
	h.Join(userRoom, sub)

	for {
		var frame clientFrame
		if err := ws.ReadJSON(&frame); err != nil {
			h.LeaveAll(sub)
			_ = ws.Close()
			return
		}
		switch frame.Event {
		case "joinChat":
			if frame.ChatID != "" {
				h.Join(frame.ChatID, sub)
			}
		case "leaveChat":
			if frame.ChatID != "" {
				h.Leave(frame.ChatID, sub)
			}
		case "joinUserRoom":
			// Already joined at session start; kept for client compatibility.
			h.Join(userRoom, sub)
		}
	}
}
