package services

import (
	"context"
	"fmt"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}
	if err := validateStruct(department); err != nil {
		return err
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	logger.Info().Str("departmentID", department.ID).Msg("Department created")
	return nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id string) (*models.Department, error) {
	department, ok := s.departmentRepo.GetByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: id %q", repositories.ErrDepartmentNotFound, id)
	}
	return department, nil
}

// ListAllDepartments returns all departments ordered by ID
func (s *DepartmentService) ListAllDepartments(ctx context.Context) []*models.Department {
	return s.departmentRepo.ListAll(ctx)
}

// DeleteDepartment removes a department; unknown IDs are ignored
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id string) {
	if s.departmentRepo.Delete(ctx, id) {
		logger.Info().Str("departmentID", id).Msg("Department deleted")
	}
}
