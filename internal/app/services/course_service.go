package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// CourseService handles course catalog operations and keeps the owning
// department's course list in step
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, departmentRepo *repositories.DepartmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateCourse stores the course and, if its department is known, lists the
// code under that department. The two steps are not atomic.
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if err := validateStruct(course); err != nil {
		return err
	}
	if course.Credits < 0 {
		return fmt.Errorf("%w: credits cannot be negative", apperrors.ErrValidationFailed)
	}
	if course.HasPrerequisite(course.Code) {
		return fmt.Errorf("%w: course %q cannot be its own prerequisite", apperrors.ErrValidationFailed, course.Code)
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	if err := s.departmentRepo.AttachCourse(ctx, course.Department, course.Code); err != nil {
		if !errors.Is(err, repositories.ErrDepartmentNotFound) {
			return fmt.Errorf("error attaching course to department: %w", err)
		}
		logger.Warn().Str("courseCode", course.Code).Str("department", course.Department).Msg("Course created for unknown department")
	}

	logger.Info().Str("courseCode", course.Code).Str("department", course.Department).Msg("Course created")
	return nil
}

// GetCourseByCode retrieves a course by code
func (s *CourseService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	course, ok := s.courseRepo.GetByCode(ctx, code)
	if !ok {
		return nil, fmt.Errorf("%w: code %q", repositories.ErrCourseNotFound, code)
	}
	return course, nil
}

// ListCoursesByDepartment returns the department's courses in code order
func (s *CourseService) ListCoursesByDepartment(ctx context.Context, department string) []*models.Course {
	return s.courseRepo.ListByDepartment(ctx, department)
}

// DeleteCourse removes a course and detaches it from its department
func (s *CourseService) DeleteCourse(ctx context.Context, code string) {
	course, ok := s.courseRepo.GetByCode(ctx, code)
	if !ok {
		return
	}
	if s.courseRepo.Delete(ctx, code) {
		s.departmentRepo.DetachCourse(ctx, course.Department, code)
		logger.Info().Str("courseCode", code).Msg("Course deleted")
	}
}
