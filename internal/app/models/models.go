package models

import (
	"fmt"
	"strings"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// EnrollmentStatus is the lifecycle state of a single enrollment record
type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled   EnrollmentStatus = "ENROLLED"
	EnrollmentStatusDropped    EnrollmentStatus = "DROPPED"
	EnrollmentStatusCompleted  EnrollmentStatus = "COMPLETED"
	EnrollmentStatusFailed     EnrollmentStatus = "FAILED"
	EnrollmentStatusWithdrawn  EnrollmentStatus = "WITHDRAWN"
	EnrollmentStatusWaitlisted EnrollmentStatus = "WAITLISTED" // No operation moves a record into or out of this state
)

type statusInfo struct {
	code        string
	description string
}

var enrollmentStatusInfo = map[EnrollmentStatus]statusInfo{
	EnrollmentStatusEnrolled:   {"E", "Student is currently enrolled"},
	EnrollmentStatusDropped:    {"D", "Student dropped the course"},
	EnrollmentStatusCompleted:  {"C", "Course successfully completed"},
	EnrollmentStatusFailed:     {"F", "Student attempted but not passed"},
	EnrollmentStatusWithdrawn:  {"W", "Student withdrew from the course"},
	EnrollmentStatusWaitlisted: {"WL", "Student is on the waitlist"},
}

var enrollmentStatusByCode = func() map[string]EnrollmentStatus {
	m := make(map[string]EnrollmentStatus, len(enrollmentStatusInfo))
	for status, info := range enrollmentStatusInfo {
		m[info.code] = status
	}
	return m
}()

// Code returns the short persistence code of the status ("E", "WL", ...)
func (s EnrollmentStatus) Code() string {
	return enrollmentStatusInfo[s].code
}

// Description returns a human readable description of the status
func (s EnrollmentStatus) Description() string {
	return enrollmentStatusInfo[s].description
}

// Valid reports whether s is one of the known statuses
func (s EnrollmentStatus) Valid() bool {
	_, ok := enrollmentStatusInfo[s]
	return ok
}

// ParseEnrollmentStatusCode resolves a status from its short code
func ParseEnrollmentStatusCode(code string) (EnrollmentStatus, error) {
	status, ok := enrollmentStatusByCode[code]
	if !ok {
		return "", fmt.Errorf("%w: unknown enrollment status code %q", apperrors.ErrValidationFailed, code)
	}
	return status, nil
}

// ParseEnrollmentStatus accepts either a status name or its short code,
// ignoring case
func ParseEnrollmentStatus(s string) (EnrollmentStatus, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if status := EnrollmentStatus(s); status.Valid() {
		return status, nil
	}
	return ParseEnrollmentStatusCode(s)
}

// GradeType identifies the kind of assessment a grade was recorded for
type GradeType string

const (
	GradeTypeAssignment GradeType = "ASSIGNMENT"
	GradeTypeQuiz       GradeType = "QUIZ"
	GradeTypeMidterm    GradeType = "MIDTERM"
	GradeTypeFinal      GradeType = "FINAL"
	GradeTypeProject    GradeType = "PROJECT"
)

// GradeTypes lists every grade type in declaration order
var GradeTypes = []GradeType{
	GradeTypeAssignment,
	GradeTypeQuiz,
	GradeTypeMidterm,
	GradeTypeFinal,
	GradeTypeProject,
}

var gradeTypeInfo = map[GradeType]statusInfo{
	GradeTypeAssignment: {"A", "Assignment"},
	GradeTypeQuiz:       {"Q", "Quiz"},
	GradeTypeMidterm:    {"M", "Midterm Exam"},
	GradeTypeFinal:      {"F", "Final Exam"},
	GradeTypeProject:    {"P", "Project"},
}

// Code returns the short code of the grade type
func (g GradeType) Code() string {
	return gradeTypeInfo[g].code
}

// Label returns the display label of the grade type
func (g GradeType) Label() string {
	return gradeTypeInfo[g].description
}

// Valid reports whether g is one of the known grade types
func (g GradeType) Valid() bool {
	_, ok := gradeTypeInfo[g]
	return ok
}

// ParseGradeTypeCode resolves a grade type from its short code
func ParseGradeTypeCode(code string) (GradeType, error) {
	for gradeType, info := range gradeTypeInfo {
		if info.code == code {
			return gradeType, nil
		}
	}
	return "", fmt.Errorf("%w: unknown grade type code %q", apperrors.ErrValidationFailed, code)
}

// ParseGradeType accepts either a grade type name or its short code,
// ignoring case
func ParseGradeType(s string) (GradeType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if gradeType := GradeType(s); gradeType.Valid() {
		return gradeType, nil
	}
	return ParseGradeTypeCode(s)
}
