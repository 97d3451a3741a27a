package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/registrar/internal/app/models"
)

// Hub keeps the connected clients of each recipient and delivers
// notifications to them
type Hub struct {
	// Registered clients organized by recipient ID
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	// closed once Run returns
	done chan struct{}

	mu sync.RWMutex

	logger zerolog.Logger
}

// Message is the frame pushed to a recipient's clients
type Message struct {
	Type           string    `json:"type"`
	NotificationID string    `json:"notificationId"`
	RecipientID    string    `json:"recipientId"`
	Content        string    `json:"content"`
	ScheduledTime  time.Time `json:"scheduledTime"`
	Timestamp      time.Time `json:"timestamp"`
}

// MessageTypeNotification marks a delivered notification
const MessageTypeNotification = "notification"

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles client registrations until ctx is cancelled, then closes
// every remaining client
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ctx.Done():
			h.closeAll()
			return nil
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.recipientID]; !ok {
		h.clients[client.recipientID] = make(map[*Client]bool)
	}
	h.clients[client.recipientID][client] = true

	h.logger.Info().
		Str("recipientID", client.recipientID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.recipientID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.recipientID)
	}

	h.logger.Info().
		Str("recipientID", client.recipientID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

// Deliver queues the notification for every connected client of its
// recipient and returns how many clients it was queued for. Clients whose
// send buffer is full are disconnected.
func (h *Hub) Deliver(n *models.Notification) int {
	data, err := json.Marshal(&Message{
		Type:           MessageTypeNotification,
		NotificationID: n.ID,
		RecipientID:    n.RecipientID,
		Content:        n.Message,
		ScheduledTime:  n.ScheduledTime,
		Timestamp:      time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error().Err(err).Str("notificationID", n.ID).Msg("Failed to marshal notification for delivery")
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for client := range h.clients[n.RecipientID] {
		select {
		case client.send <- data:
			delivered++
		default:
			// slow consumer
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Str("notificationID", n.ID).
		Str("recipientID", n.RecipientID).
		Int("clientCount", delivered).
		Msg("Notification delivered")
	return delivered
}

// ClientCount returns the number of connected clients for a recipient
func (h *Hub) ClientCount(recipientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[recipientID])
}
