package models

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Course is a course offered by a department
type Course struct {
	Code           string     `json:"code" yaml:"code" validate:"notblank" example:"CS101"`
	Title          string     `json:"title" yaml:"title" example:"Introduction to Computer Science"`
	Credits        int        `json:"credits" yaml:"credits" example:"4"`
	Department     string     `json:"department" yaml:"department" validate:"notblank" example:"CS"` // Owning department id
	Prerequisites  []string   `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	ScheduledSlots []TimeSlot `json:"scheduledSlots,omitempty" yaml:"scheduledSlots,omitempty"` // Kept in TimeSlot order
}

// Clone returns a deep copy of the course
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Prerequisites = slices.Clone(c.Prerequisites)
	cp.ScheduledSlots = slices.Clone(c.ScheduledSlots)
	return &cp
}

// HasPrerequisite reports whether code is listed as a prerequisite
func (c *Course) HasPrerequisite(code string) bool {
	return slices.Contains(c.Prerequisites, code)
}

// Normalize sorts and de-duplicates prerequisites and time slots
func (c *Course) Normalize() {
	slices.Sort(c.Prerequisites)
	c.Prerequisites = slices.Compact(c.Prerequisites)
	slices.SortFunc(c.ScheduledSlots, CompareTimeSlots)
	c.ScheduledSlots = slices.Compact(c.ScheduledSlots)
}

// TimeSlot is a weekly meeting slot; Start and End use "15:04" notation
type TimeSlot struct {
	Day   time.Weekday `json:"day" yaml:"day" example:"1"`
	Start string       `json:"start" yaml:"start" example:"09:00"`
	End   string       `json:"end" yaml:"end" example:"10:30"`
}

// weekOrder places Monday first and Sunday last
func weekOrder(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// CompareTimeSlots orders slots by day (Monday first), then start, then end
func CompareTimeSlots(a, b TimeSlot) int {
	if c := cmp.Compare(weekOrder(a.Day), weekOrder(b.Day)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}

// String renders the slot as "Monday 09:00-10:30"
func (t TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", t.Day, t.Start, t.End)
}
