package services

import (
	"context"
	"fmt"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// InstructorService defines the interface for instructor-related operations
type InstructorService interface {
	CreateInstructor(ctx context.Context, instructor *models.Instructor) error
	GetInstructorByID(ctx context.Context, id string) (*models.Instructor, error)
	SearchInstructorsByName(ctx context.Context, token string) []*models.Instructor
	ListInstructorsForCourse(ctx context.Context, courseCode string) []*models.Instructor
	DeleteInstructor(ctx context.Context, id string)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorRepo *repositories.InstructorRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo *repositories.InstructorRepository) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
	}
}

// CreateInstructor validates and stores an instructor
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if instructor == nil {
		return fmt.Errorf("%w: instructor is nil", apperrors.ErrValidationFailed)
	}
	if err := validateStruct(instructor); err != nil {
		return err
	}

	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		return fmt.Errorf("error creating instructor: %w", err)
	}

	logger.Info().Str("instructorID", instructor.ID).Msg("Instructor created")
	return nil
}

// GetInstructorByID retrieves an instructor by ID
func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id string) (*models.Instructor, error) {
	instructor, ok := s.instructorRepo.GetByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: id %q", repositories.ErrInstructorNotFound, id)
	}
	return instructor, nil
}

func (s *instructorServiceImpl) SearchInstructorsByName(ctx context.Context, token string) []*models.Instructor {
	return s.instructorRepo.SearchByNameToken(ctx, token)
}

func (s *instructorServiceImpl) ListInstructorsForCourse(ctx context.Context, courseCode string) []*models.Instructor {
	return s.instructorRepo.ListByCourse(ctx, courseCode)
}

// DeleteInstructor removes an instructor; unknown IDs are ignored
func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id string) {
	if s.instructorRepo.Delete(ctx, id) {
		logger.Info().Str("instructorID", id).Msg("Instructor deleted")
	}
}
