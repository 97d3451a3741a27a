package services

import (
	"context"
	"fmt"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// StudentService handles student registration and profile operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// RegisterStudent validates and stores a new student
func (s *StudentService) RegisterStudent(ctx context.Context, student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if err := validateStruct(student); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return fmt.Errorf("register student: %w", err)
	}

	logger.Info().Str("studentID", student.ID).Msg("Student registered")
	return nil
}

// GetStudentByEmail retrieves the student registered with email
func (s *StudentService) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	student, ok := s.studentRepo.GetByEmail(ctx, email)
	if !ok {
		return nil, fmt.Errorf("%w: email %q", repositories.ErrStudentNotFound, email)
	}
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, ok := s.studentRepo.GetByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: id %q", repositories.ErrStudentNotFound, id)
	}
	return student, nil
}

// SearchStudentsByName returns students having token as one of their name words
func (s *StudentService) SearchStudentsByName(ctx context.Context, token string) []*models.Student {
	return s.studentRepo.SearchByNameToken(ctx, token)
}

// ListStudents returns all students ordered by ID
func (s *StudentService) ListStudents(ctx context.Context) []*models.Student {
	return s.studentRepo.List(ctx)
}

// UpdateContact changes a student's email and phone; blank values are kept
func (s *StudentService) UpdateContact(ctx context.Context, id, email, phone string) error {
	if err := s.studentRepo.UpdateContact(ctx, id, email, phone); err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	logger.Info().Str("studentID", id).Msg("Student contact updated")
	return nil
}

// UpdateAttributes merges attrs into the student's attributes
func (s *StudentService) UpdateAttributes(ctx context.Context, id string, attrs map[string]string) error {
	if len(attrs) == 0 {
		return fmt.Errorf("%w: attributes cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := s.studentRepo.UpdateAttributes(ctx, id, attrs); err != nil {
		return fmt.Errorf("update attributes: %w", err)
	}
	return nil
}

// DeleteStudent removes a student. Deleting an unknown student is not an error.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) {
	if s.studentRepo.Delete(ctx, id) {
		logger.Info().Str("studentID", id).Msg("Student deleted")
	}
}
