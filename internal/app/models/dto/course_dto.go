package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// TimeSlotRequest is a weekly slot with the day given by name
type TimeSlotRequest struct {
	Day   string `json:"day" binding:"required" example:"Monday"`
	Start string `json:"start" binding:"required" example:"09:00"`
	End   string `json:"end" binding:"required" example:"10:30"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code           string            `json:"code" binding:"required,notblank" example:"CS101"`
	Title          string            `json:"title" example:"Introduction to Computer Science"`
	Credits        int               `json:"credits" binding:"gte=0" example:"4"`
	Department     string            `json:"department" binding:"required,notblank" example:"CS"`
	Prerequisites  []string          `json:"prerequisites"`
	ScheduledSlots []TimeSlotRequest `json:"scheduledSlots" binding:"dive"`
}

var weekdays = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		m[strings.ToLower(d.String())] = d
	}
	return m
}()

// ToModel converts the request into a course model, parsing day names and
// "15:04" times
func (r *CreateCourseRequest) ToModel() (*models.Course, error) {
	slots := make([]models.TimeSlot, 0, len(r.ScheduledSlots))
	for _, s := range r.ScheduledSlots {
		day, ok := weekdays[strings.ToLower(strings.TrimSpace(s.Day))]
		if !ok {
			return nil, fmt.Errorf("%w: unknown day %q", apperrors.ErrValidationFailed, s.Day)
		}
		start, err := time.Parse("15:04", s.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start time %q", apperrors.ErrValidationFailed, s.Start)
		}
		end, err := time.Parse("15:04", s.End)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end time %q", apperrors.ErrValidationFailed, s.End)
		}
		if !end.After(start) {
			return nil, fmt.Errorf("%w: slot must end after it starts", apperrors.ErrValidationFailed)
		}
		slots = append(slots, models.TimeSlot{Day: day, Start: s.Start, End: s.End})
	}

	return &models.Course{
		Code:           r.Code,
		Title:          r.Title,
		Credits:        r.Credits,
		Department:     r.Department,
		Prerequisites:  r.Prerequisites,
		ScheduledSlots: slots,
	}, nil
}
