package repositories

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/index"
	"github.com/yigit/registrar/internal/pkg/logger"
)

const notificationStore = "notification"

// Notification error types
var (
	ErrNotificationNotFound = apperrors.NewResourceNotFoundError("notification not found")
	ErrInvalidNotification  = apperrors.NewValidationError("notification and its id must not be empty")
)

// NotificationRepository keeps notifications by id with a recipient index.
// Pending notifications are found by scanning the table.
type NotificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]*models.Notification
	byRecipient   *index.SetIndex
	metrics       *Metrics
}

// NewNotificationRepository creates an empty notification store
func NewNotificationRepository(metrics *Metrics) *NotificationRepository {
	return &NotificationRepository{
		notifications: make(map[string]*models.Notification),
		byRecipient:   index.NewSetIndex(),
		metrics:       metrics,
	}
}

// Add stores a copy of n. Adding an id that is already present changes
// nothing and is not an error; added reports whether n was stored.
func (r *NotificationRepository) Add(_ context.Context, n *models.Notification) (added bool, err error) {
	defer func() { r.metrics.observe(notificationStore, "add", err) }()

	if n == nil || strings.TrimSpace(n.ID) == "" {
		return false, ErrInvalidNotification
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notifications[n.ID]; exists {
		logger.Debug().Str("notificationID", n.ID).Msg("Notification already queued, ignoring")
		return false, nil
	}

	stored := n.Clone()
	r.notifications[stored.ID] = stored
	r.byRecipient.Add(stored.RecipientID, stored.ID)
	r.metrics.setRecords(notificationStore, len(r.notifications))

	logger.Debug().Str("notificationID", stored.ID).Str("recipientID", stored.RecipientID).Msg("Notification queued")
	return true, nil
}

// GetByID returns a copy of the notification, or false if there is none
func (r *NotificationRepository) GetByID(_ context.Context, id string) (*models.Notification, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notifications[id]
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}

// ListForRecipient returns the recipient's notifications ordered by
// scheduled time, then id
func (r *NotificationRepository) ListForRecipient(_ context.Context, recipientID string) []*models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byRecipient.Members(recipientID)
	result := make([]*models.Notification, 0, len(ids))
	for _, id := range ids {
		if n, ok := r.notifications[id]; ok {
			result = append(result, n.Clone())
		}
	}
	slices.SortFunc(result, compareSchedule)
	return result
}

// ListPending returns every unsent notification ordered by scheduled time,
// then id
func (r *NotificationRepository) ListPending(_ context.Context) []*models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Notification, 0)
	for _, n := range r.notifications {
		if !n.Sent {
			result = append(result, n.Clone())
		}
	}
	slices.SortFunc(result, compareSchedule)
	return result
}

func compareSchedule(a, b *models.Notification) int {
	if c := a.ScheduledTime.Compare(b.ScheduledTime); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// MarkSent flags the notification as delivered
func (r *NotificationRepository) MarkSent(_ context.Context, id string) (err error) {
	defer func() { r.metrics.observe(notificationStore, "mark_sent", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		logger.Warn().Str("notificationID", id).Msg("Attempted to mark unknown notification as sent")
		return fmt.Errorf("%w: id %q", ErrNotificationNotFound, id)
	}
	n.Sent = true
	return nil
}

// Delete removes the notification and its recipient entry
func (r *NotificationRepository) Delete(_ context.Context, id string) (err error) {
	defer func() { r.metrics.observe(notificationStore, "delete", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		logger.Warn().Str("notificationID", id).Msg("Attempted to delete unknown notification")
		return fmt.Errorf("%w: id %q", ErrNotificationNotFound, id)
	}
	delete(r.notifications, id)
	r.byRecipient.Remove(n.RecipientID, id)
	r.metrics.setRecords(notificationStore, len(r.notifications))

	logger.Debug().Str("notificationID", id).Msg("Notification deleted")
	return nil
}

// Len returns the number of stored notifications
func (r *NotificationRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notifications)
}
