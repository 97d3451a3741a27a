package websocket

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/registrar/internal/app/models/dto"
)

// Handler upgrades notification stream requests
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection subscribes the caller to a recipient's notifications.
// GET /ws/notifications/:recipient
func (h *Handler) HandleConnection(c *gin.Context) {
	recipientID := strings.TrimSpace(c.Param("recipient"))
	if recipientID == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "recipient is required").WithField("recipient")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		h.logger.Warn().Err(err).Str("recipientID", recipientID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:         h.hub,
		conn:        conn,
		send:        make(chan []byte, sendBufferSize),
		recipientID: recipientID,
		logger:      h.logger,
	}
	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
