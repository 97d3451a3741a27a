package services

import (
	"context"
	"fmt"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// EnrollmentKey identifies the records of one student in one course offering
type EnrollmentKey struct {
	StudentID  string `json:"studentId" validate:"notblank"`
	CourseCode string `json:"courseCode" validate:"notblank"`
	Semester   string `json:"semester" validate:"notblank"`
}

// EnrollmentService handles enrollment lifecycle, grades and attendance
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
	}
}

// EnrollStudent registers the student in the course for the semester
func (s *EnrollmentService) EnrollStudent(ctx context.Context, key EnrollmentKey) error {
	if err := validateStruct(key); err != nil {
		return err
	}
	if err := s.enrollmentRepo.Enroll(ctx, key.StudentID, key.CourseCode, key.Semester); err != nil {
		return fmt.Errorf("enroll student: %w", err)
	}

	logger.Info().Str("studentID", key.StudentID).Str("courseCode", key.CourseCode).Str("semester", key.Semester).Msg("Student enrolled")
	return nil
}

// DropStudent marks matching records DROPPED and takes the student off the roster
func (s *EnrollmentService) DropStudent(ctx context.Context, key EnrollmentKey) error {
	if err := validateStruct(key); err != nil {
		return err
	}
	n, err := s.enrollmentRepo.Drop(ctx, key.StudentID, key.CourseCode, key.Semester)
	if err != nil {
		return fmt.Errorf("drop student: %w", err)
	}

	logger.Info().Str("studentID", key.StudentID).Str("courseCode", key.CourseCode).Int("records", n).Msg("Student dropped")
	return nil
}

// CompleteEnrollment moves ENROLLED records to COMPLETED
func (s *EnrollmentService) CompleteEnrollment(ctx context.Context, key EnrollmentKey) error {
	return s.transition(ctx, key, models.EnrollmentStatusCompleted)
}

// FailEnrollment moves ENROLLED records to FAILED
func (s *EnrollmentService) FailEnrollment(ctx context.Context, key EnrollmentKey) error {
	return s.transition(ctx, key, models.EnrollmentStatusFailed)
}

// WithdrawEnrollment moves ENROLLED records to WITHDRAWN
func (s *EnrollmentService) WithdrawEnrollment(ctx context.Context, key EnrollmentKey) error {
	return s.transition(ctx, key, models.EnrollmentStatusWithdrawn)
}

// SetStatus applies a status change by name. DROPPED is routed through
// DropStudent so the roster is updated.
func (s *EnrollmentService) SetStatus(ctx context.Context, key EnrollmentKey, status models.EnrollmentStatus) error {
	switch status {
	case models.EnrollmentStatusDropped:
		return s.DropStudent(ctx, key)
	case models.EnrollmentStatusCompleted:
		return s.CompleteEnrollment(ctx, key)
	case models.EnrollmentStatusFailed:
		return s.FailEnrollment(ctx, key)
	case models.EnrollmentStatusWithdrawn:
		return s.WithdrawEnrollment(ctx, key)
	default:
		return s.transition(ctx, key, status)
	}
}

func (s *EnrollmentService) transition(ctx context.Context, key EnrollmentKey, status models.EnrollmentStatus) error {
	if err := validateStruct(key); err != nil {
		return err
	}
	n, err := s.enrollmentRepo.SetStatus(ctx, key.StudentID, key.CourseCode, key.Semester, status)
	if err != nil {
		return fmt.Errorf("set enrollment status: %w", err)
	}

	logger.Info().Str("studentID", key.StudentID).Str("courseCode", key.CourseCode).Str("status", string(status)).Int("records", n).Msg("Enrollment status changed")
	return nil
}

// RecordGrade stores a numeric grade for an assessment type
func (s *EnrollmentService) RecordGrade(ctx context.Context, key EnrollmentKey, gradeType models.GradeType, value float64) error {
	if err := validateStruct(key); err != nil {
		return err
	}
	if err := s.enrollmentRepo.RecordGrade(ctx, key.StudentID, key.CourseCode, key.Semester, gradeType, value); err != nil {
		return fmt.Errorf("record grade: %w", err)
	}
	return nil
}

// RecordAttendance marks one session present or absent
func (s *EnrollmentService) RecordAttendance(ctx context.Context, key EnrollmentKey, session int, present bool) error {
	if err := validateStruct(key); err != nil {
		return err
	}
	if err := s.enrollmentRepo.RecordAttendance(ctx, key.StudentID, key.CourseCode, key.Semester, session, present); err != nil {
		return fmt.Errorf("record attendance: %w", err)
	}
	return nil
}

// GetEnrollmentsForStudent returns the student's records in enrollment order
func (s *EnrollmentService) GetEnrollmentsForStudent(ctx context.Context, studentID string) []*models.Enrollment {
	return s.enrollmentRepo.ForStudent(ctx, studentID)
}

// GetStudentsForCourse returns the course roster
func (s *EnrollmentService) GetStudentsForCourse(ctx context.Context, courseCode string) []string {
	return s.enrollmentRepo.StudentsForCourse(ctx, courseCode)
}

// ListEnrollmentsForCourse returns every record of a course offering
func (s *EnrollmentService) ListEnrollmentsForCourse(ctx context.Context, courseCode, semester string) []*models.Enrollment {
	return s.enrollmentRepo.ListForCourse(ctx, courseCode, semester)
}
