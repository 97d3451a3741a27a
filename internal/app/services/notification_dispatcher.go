package services

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// Deliverer pushes a notification to its recipient's connected clients and
// reports how many received it
type Deliverer interface {
	Deliver(n *models.Notification) int
	ClientCount(recipientID string) int
}

// NotificationDispatcher periodically delivers due notifications. A
// notification stays pending until a client of its recipient is connected.
type NotificationDispatcher struct {
	notifications *NotificationService
	deliverer     Deliverer
	interval      time.Duration
	now           func() time.Time
}

// NewNotificationDispatcher creates a dispatcher polling every interval
func NewNotificationDispatcher(notifications *NotificationService, deliverer Deliverer, interval time.Duration) *NotificationDispatcher {
	return &NotificationDispatcher{
		notifications: notifications,
		deliverer:     deliverer,
		interval:      interval,
		now:           time.Now,
	}
}

// DispatchDue delivers every pending notification whose scheduled time has
// passed and marks the delivered ones sent. It returns the number marked.
func (d *NotificationDispatcher) DispatchDue(ctx context.Context) int {
	now := d.now()
	sent, offline := 0, 0
	for _, n := range d.notifications.ListPending(ctx) {
		if n.ScheduledTime.After(now) {
			// pending list is in schedule order
			break
		}
		if d.deliverer.ClientCount(n.RecipientID) == 0 {
			offline++
			continue
		}
		if d.deliverer.Deliver(n) == 0 {
			continue
		}
		if err := d.notifications.MarkSent(ctx, n.ID); err != nil {
			// deleted between listing and delivery
			if !errors.Is(err, repositories.ErrNotificationNotFound) {
				logger.Error().Err(err).Str("notificationID", n.ID).Msg("Failed to mark delivered notification")
			}
			continue
		}
		sent++
	}
	if offline > 0 {
		logger.Debug().Int("offline", offline).Msg("Due notifications held for offline recipients")
	}
	return sent
}

// Run dispatches on every tick until ctx is cancelled
func (d *NotificationDispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", d.interval).Msg("Notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Notification dispatcher stopped")
			return nil
		case <-ticker.C:
			if n := d.DispatchDue(ctx); n > 0 {
				logger.Debug().Int("delivered", n).Msg("Dispatched due notifications")
			}
		}
	}
}
