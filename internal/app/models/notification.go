package models

import "time"

// Notification is a message queued for delivery to a student or instructor
type Notification struct {
	ID            string    `json:"id" example:"0b6f3c1e-8f5e-4a53-a1b2-6f7d1e2c9a10"`
	RecipientID   string    `json:"recipientId" validate:"notblank" example:"S1001"` // Student or instructor id
	Message       string    `json:"message" example:"CS101 midterm moved to Friday"`
	ScheduledTime time.Time `json:"scheduledTime" example:"2025-10-01T09:00:00Z"` // When the message should go out
	Sent          bool      `json:"sent" example:"false"`
}

// Clone returns a copy of the notification
func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}
