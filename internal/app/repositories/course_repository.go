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
	"github.com/yigit/registrar/internal/pkg/index"
	"github.com/yigit/registrar/internal/pkg/logger"
)

const courseStore = "course"

// Course error types
var (
	ErrCourseNotFound      = apperrors.NewResourceNotFoundError("course not found")
	ErrCourseAlreadyExists = apperrors.NewAlreadyExistsError("course with this code already exists")
	ErrInvalidCourse       = apperrors.NewValidationError("course and its code must not be empty")
)

// CourseRepository keeps courses by code, grouped by department. Department
// lookups ignore case.
type CourseRepository struct {
	mu           sync.RWMutex
	courses      map[string]*models.Course
	byDepartment *index.SetIndex
	metrics      *Metrics
}

// NewCourseRepository creates an empty course store
func NewCourseRepository(metrics *Metrics) *CourseRepository {
	return &CourseRepository{
		courses:      make(map[string]*models.Course),
		byDepartment: index.NewFoldedSetIndex(),
		metrics:      metrics,
	}
}

// Create stores a normalized copy of course
func (r *CourseRepository) Create(_ context.Context, course *models.Course) (err error) {
	defer func() { r.metrics.observe(courseStore, "create", err) }()

	if course == nil || strings.TrimSpace(course.Code) == "" {
		return ErrInvalidCourse
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.courses[course.Code]; exists {
		logger.Warn().Str("courseCode", course.Code).Msg("Attempted to create course with duplicate code")
		return fmt.Errorf("%w: code %q", ErrCourseAlreadyExists, course.Code)
	}

	stored := course.Clone()
	stored.Normalize()
	r.courses[stored.Code] = stored
	r.byDepartment.Add(stored.Department, stored.Code)
	r.metrics.setRecords(courseStore, len(r.courses))

	logger.Debug().Str("courseCode", stored.Code).Str("department", stored.Department).Msg("Course created")
	return nil
}

// GetByCode returns a copy of the course, or false if there is none
func (r *CourseRepository) GetByCode(_ context.Context, code string) (*models.Course, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courses[code]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// ListByDepartment returns the department's courses in ascending code order
func (r *CourseRepository) ListByDepartment(_ context.Context, department string) []*models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := r.byDepartment.Members(department)
	result := make([]*models.Course, 0, len(codes))
	for _, code := range codes {
		if c, ok := r.courses[code]; ok {
			result = append(result, c.Clone())
		}
	}
	return result
}

// List returns every course in ascending code order
func (r *CourseRepository) List(_ context.Context) []*models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Course, 0, len(r.courses))
	for _, code := range slices.Sorted(maps.Keys(r.courses)) {
		result = append(result, r.courses[code].Clone())
	}
	return result
}

// Delete removes the course and its department entry
func (r *CourseRepository) Delete(_ context.Context, code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.courses[code]
	if !ok {
		return false
	}
	delete(r.courses, code)
	r.byDepartment.Remove(c.Department, code)
	r.metrics.setRecords(courseStore, len(r.courses))
	r.metrics.observe(courseStore, "delete", nil)

	logger.Debug().Str("courseCode", code).Msg("Course deleted")
	return true
}

// Len returns the number of stored courses
func (r *CourseRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.courses)
}
