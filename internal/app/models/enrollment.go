package models

import "maps"

// Enrollment records one student's registration in a course for a semester
type Enrollment struct {
	StudentID  string                `json:"studentId" example:"S1001"`
	CourseCode string                `json:"courseCode" example:"CS101"`
	Semester   string                `json:"semester" example:"Fall2025"`
	Status     EnrollmentStatus      `json:"status" example:"ENROLLED"`
	Grades     map[GradeType]float64 `json:"grades,omitempty"`     // Numeric grade (0-100) per assessment type
	Attendance []bool                `json:"attendance,omitempty"` // Index is the session number, true means present
}

// Matches reports whether the record is for the given course and semester
func (e *Enrollment) Matches(courseCode, semester string) bool {
	return e.CourseCode == courseCode && e.Semester == semester
}

// Clone returns a deep copy of the enrollment
func (e *Enrollment) Clone() *Enrollment {
	if e == nil {
		return nil
	}
	c := *e
	c.Grades = maps.Clone(e.Grades)
	c.Attendance = append([]bool(nil), e.Attendance...)
	return &c
}

// AverageGrade returns the mean of the recorded grades and false when none are recorded
func (e *Enrollment) AverageGrade() (float64, bool) {
	if len(e.Grades) == 0 {
		return 0, false
	}
	var sum float64
	for _, g := range e.Grades {
		sum += g
	}
	return sum / float64(len(e.Grades)), true
}

// AttendedSessions returns the number of sessions marked present and the number recorded
func (e *Enrollment) AttendedSessions() (present, total int) {
	for _, p := range e.Attendance {
		if p {
			present++
		}
	}
	return present, len(e.Attendance)
}
