package models

import "slices"

// Department is an academic department and the course codes it offers
type Department struct {
	ID      string   `json:"id" yaml:"id" validate:"notblank" example:"CS"`
	Name    string   `json:"name" yaml:"name" validate:"notblank" example:"Computer Science"`
	Courses []string `json:"courses" yaml:"courses,omitempty" example:"CS101,CS201"` // Kept sorted and distinct
}

// Clone returns a deep copy of the department
func (d *Department) Clone() *Department {
	if d == nil {
		return nil
	}
	c := *d
	c.Courses = slices.Clone(d.Courses)
	return &c
}
