package dto

import (
	"time"

	"github.com/yigit/registrar/internal/app/models"
)

// ScheduleNotificationRequest represents a notification to queue. ID and
// ScheduledTime are optional.
type ScheduleNotificationRequest struct {
	ID            string     `json:"id" example:"0b6f3c1e-8f5e-4a53-a1b2-6f7d1e2c9a10"`
	RecipientID   string     `json:"recipientId" binding:"required,notblank" example:"S1001"`
	Message       string     `json:"message" binding:"required" example:"CS101 midterm moved to Friday"`
	ScheduledTime *time.Time `json:"scheduledTime" example:"2025-10-01T09:00:00Z"`
}

// ToModel converts the request into a notification model
func (r *ScheduleNotificationRequest) ToModel() *models.Notification {
	n := &models.Notification{
		ID:          r.ID,
		RecipientID: r.RecipientID,
		Message:     r.Message,
	}
	if r.ScheduledTime != nil {
		n.ScheduledTime = *r.ScheduledTime
	}
	return n
}
