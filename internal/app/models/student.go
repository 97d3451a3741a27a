package models

import "maps"

// Student is a registered student and their contact details
type Student struct {
	ID         string            `json:"id" yaml:"id" validate:"notblank" example:"S1001"`                 // Institutional student identifier
	FullName   string            `json:"fullName" yaml:"fullName" example:"John Doe"`                      // Legal name, indexed by token
	Email      string            `json:"email" yaml:"email" validate:"notblank" example:"john@school.edu"` // Unique across students
	Phone      string            `json:"phone,omitempty" yaml:"phone,omitempty" example:"+90 555 000 0000"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"` // Free-form profile fields
}

// Clone returns a deep copy of the student
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	c := *s
	c.Attributes = maps.Clone(s.Attributes)
	return &c
}
