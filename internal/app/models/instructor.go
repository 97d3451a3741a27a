package models

import (
	"slices"
)

// Instructor is a teaching staff member and the courses they teach
type Instructor struct {
	ID            string   `json:"id" yaml:"id" validate:"notblank" example:"I42"`              // Employee identifier
	Name          string   `json:"name" yaml:"name" example:"Ada Lovelace"`                     // Display name, indexed by token
	CoursesTaught []string `json:"coursesTaught" yaml:"coursesTaught" example:"CS101,CS201"` // Course codes, indexed course -> instructor
}

// Clone returns a deep copy of the instructor
func (i *Instructor) Clone() *Instructor {
	if i == nil {
		return nil
	}
	c := *i
	c.CoursesTaught = slices.Clone(i.CoursesTaught)
	return &c
}

// CourseCodes returns the distinct taught course codes in ascending order
func (i *Instructor) CourseCodes() []string {
	codes := slices.Clone(i.CoursesTaught)
	slices.Sort(codes)
	return slices.Compact(codes)
}
