package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// NotificationService schedules and tracks notifications
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	now              func() time.Time
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// Schedule queues a notification. A blank ID is replaced with a random UUID
// and a zero scheduled time with the current time. The stored notification
// is returned; re-scheduling an existing ID returns the one already queued.
func (s *NotificationService) Schedule(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: notification is nil", apperrors.ErrValidationFailed)
	}
	if err := validateStruct(n); err != nil {
		return nil, err
	}

	queued := n.Clone()
	if strings.TrimSpace(queued.ID) == "" {
		queued.ID = uuid.NewString()
	}
	if queued.ScheduledTime.IsZero() {
		queued.ScheduledTime = s.now().UTC()
	}
	queued.Sent = false

	added, err := s.notificationRepo.Add(ctx, queued)
	if err != nil {
		return nil, fmt.Errorf("schedule notification: %w", err)
	}
	if !added {
		existing, ok := s.notificationRepo.GetByID(ctx, queued.ID)
		if !ok {
			return nil, fmt.Errorf("%w: id %q", repositories.ErrNotificationNotFound, queued.ID)
		}
		return existing, nil
	}

	logger.Info().Str("notificationID", queued.ID).Str("recipientID", queued.RecipientID).Time("scheduledTime", queued.ScheduledTime).Msg("Notification scheduled")
	return queued, nil
}

// GetNotification retrieves a notification by ID
func (s *NotificationService) GetNotification(ctx context.Context, id string) (*models.Notification, error) {
	n, ok := s.notificationRepo.GetByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: id %q", repositories.ErrNotificationNotFound, id)
	}
	return n, nil
}

// ListForRecipient returns a recipient's notifications in schedule order
func (s *NotificationService) ListForRecipient(ctx context.Context, recipientID string) []*models.Notification {
	return s.notificationRepo.ListForRecipient(ctx, recipientID)
}

// ListPending returns unsent notifications in schedule order
func (s *NotificationService) ListPending(ctx context.Context) []*models.Notification {
	return s.notificationRepo.ListPending(ctx)
}

// MarkSent flags a notification as delivered
func (s *NotificationService) MarkSent(ctx context.Context, id string) error {
	if err := s.notificationRepo.MarkSent(ctx, id); err != nil {
		return fmt.Errorf("mark notification sent: %w", err)
	}
	logger.Info().Str("notificationID", id).Msg("Notification marked as sent")
	return nil
}

// DeleteNotification removes a notification
func (s *NotificationService) DeleteNotification(ctx context.Context, id string) error {
	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	logger.Info().Str("notificationID", id).Msg("Notification deleted")
	return nil
}
