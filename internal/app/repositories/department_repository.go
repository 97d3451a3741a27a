package repositories

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

const departmentStore = "department"

// Department error types
var (
	ErrDepartmentNotFound      = apperrors.NewResourceNotFoundError("department not found")
	ErrDepartmentAlreadyExists = apperrors.NewAlreadyExistsError("department with this id already exists")
	ErrInvalidDepartment       = apperrors.NewValidationError("department and its id must not be empty")
)

// DepartmentRepository keeps departments by id and lists them in id order.
// Ids match case-insensitively, as in the course store's department index;
// the stored record keeps the casing it was created with.
type DepartmentRepository struct {
	mu          sync.RWMutex
	departments map[string]*models.Department
	byFolded    map[string]string // lower-cased id -> stored id
	metrics     *Metrics
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(metrics *Metrics) *DepartmentRepository {
	return &DepartmentRepository{
		departments: make(map[string]*models.Department),
		byFolded:    make(map[string]string),
		metrics:     metrics,
	}
}

// Create stores a copy of department with its course set sorted
func (r *DepartmentRepository) Create(_ context.Context, department *models.Department) (err error) {
	defer func() { r.metrics.observe(departmentStore, "create", err) }()

	if department == nil || strings.TrimSpace(department.ID) == "" {
		return ErrInvalidDepartment
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.lookupLocked(department.ID); exists {
		logger.Warn().Str("departmentID", department.ID).Msg("Attempted to create department with duplicate ID")
		return fmt.Errorf("%w: id %q", ErrDepartmentAlreadyExists, department.ID)
	}

	stored := department.Clone()
	slices.Sort(stored.Courses)
	stored.Courses = slices.Compact(stored.Courses)
	r.departments[stored.ID] = stored
	r.byFolded[strings.ToLower(stored.ID)] = stored.ID
	r.metrics.setRecords(departmentStore, len(r.departments))

	logger.Debug().Str("departmentID", stored.ID).Msg("Department created")
	return nil
}

// lookupLocked resolves id case-insensitively. Callers hold r.mu.
func (r *DepartmentRepository) lookupLocked(id string) (*models.Department, bool) {
	stored, ok := r.byFolded[strings.ToLower(id)]
	if !ok {
		return nil, false
	}
	return r.departments[stored], true
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(_ context.Context, id string) (*models.Department, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.lookupLocked(id)
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// ListAll returns every department in ascending id order
func (r *DepartmentRepository) ListAll(_ context.Context) []*models.Department {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Department, 0, len(r.departments))
	for _, id := range slices.Sorted(maps.Keys(r.departments)) {
		result = append(result, r.departments[id].Clone())
	}
	return result
}

// AttachCourse adds code to the department's course set
func (r *DepartmentRepository) AttachCourse(_ context.Context, departmentID, code string) (err error) {
	defer func() { r.metrics.observe(departmentStore, "attach_course", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.lookupLocked(departmentID)
	if !ok {
		return fmt.Errorf("%w: id %q", ErrDepartmentNotFound, departmentID)
	}
	i, found := slices.BinarySearch(d.Courses, code)
	if !found {
		d.Courses = slices.Insert(d.Courses, i, code)
	}
	return nil
}

// DetachCourse removes code from the department's course set. Unknown
// departments and codes are ignored.
func (r *DepartmentRepository) DetachCourse(_ context.Context, departmentID, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.lookupLocked(departmentID)
	if !ok {
		return
	}
	if i, found := slices.BinarySearch(d.Courses, code); found {
		d.Courses = slices.Delete(d.Courses, i, i+1)
	}
	r.metrics.observe(departmentStore, "detach_course", nil)
}

// Delete removes the department; an unknown id is a no-op
func (r *DepartmentRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.lookupLocked(id)
	if !ok {
		return false
	}
	delete(r.departments, d.ID)
	delete(r.byFolded, strings.ToLower(d.ID))
	r.metrics.setRecords(departmentStore, len(r.departments))
	r.metrics.observe(departmentStore, "delete", nil)

	logger.Debug().Str("departmentID", id).Msg("Department deleted")
	return true
}

// Len returns the number of stored departments
func (r *DepartmentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.departments)
}
