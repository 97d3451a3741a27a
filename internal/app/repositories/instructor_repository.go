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

const instructorStore = "instructor"

// Instructor error types
var (
	ErrInstructorNotFound      = apperrors.NewResourceNotFoundError("instructor not found")
	ErrInstructorAlreadyExists = apperrors.NewAlreadyExistsError("instructor with this id already exists")
	ErrInvalidInstructor       = apperrors.NewValidationError("instructor and its id must not be empty")
)

// InstructorRepository keeps instructors by id, indexed by name token and by
// the course codes they teach.
type InstructorRepository struct {
	mu          sync.RWMutex
	instructors map[string]*models.Instructor
	names       *index.NameTokenIndex
	byCourse    *index.SetIndex
	metrics     *Metrics
}

// NewInstructorRepository creates an empty instructor store
func NewInstructorRepository(metrics *Metrics) *InstructorRepository {
	return &InstructorRepository{
		instructors: make(map[string]*models.Instructor),
		names:       index.NewNameTokenIndex(),
		byCourse:    index.NewSetIndex(),
		metrics:     metrics,
	}
}

// Create stores a copy of instructor and indexes it
func (r *InstructorRepository) Create(_ context.Context, instructor *models.Instructor) (err error) {
	defer func() { r.metrics.observe(instructorStore, "create", err) }()

	if instructor == nil || strings.TrimSpace(instructor.ID) == "" {
		return ErrInvalidInstructor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.instructors[instructor.ID]; exists {
		logger.Warn().Str("instructorID", instructor.ID).Msg("Attempted to create instructor with duplicate ID")
		return fmt.Errorf("%w: id %q", ErrInstructorAlreadyExists, instructor.ID)
	}

	stored := instructor.Clone()
	stored.CoursesTaught = stored.CourseCodes()
	r.instructors[stored.ID] = stored
	r.names.Add(stored.Name, stored.ID)
	for _, code := range stored.CoursesTaught {
		r.byCourse.Add(code, stored.ID)
	}
	r.metrics.setRecords(instructorStore, len(r.instructors))

	logger.Debug().Str("instructorID", stored.ID).Int("courses", len(stored.CoursesTaught)).Msg("Instructor created")
	return nil
}

// GetByID returns a copy of the instructor, or false if there is none
func (r *InstructorRepository) GetByID(_ context.Context, id string) (*models.Instructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.instructors[id]
	if !ok {
		return nil, false
	}
	return i.Clone(), true
}

// SearchByNameToken returns the instructors whose name contains token,
// ordered by id
func (r *InstructorRepository) SearchByNameToken(_ context.Context, token string) []*models.Instructor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolve(r.names.Lookup(token))
}

// ListByCourse returns the instructors teaching the course, ordered by id
func (r *InstructorRepository) ListByCourse(_ context.Context, courseCode string) []*models.Instructor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolve(r.byCourse.Members(courseCode))
}

// List returns every instructor ordered by id
func (r *InstructorRepository) List(_ context.Context) []*models.Instructor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolve(slices.Sorted(maps.Keys(r.instructors)))
}

// resolve maps ids to copies, skipping ids that no longer resolve.
// Caller holds the lock.
func (r *InstructorRepository) resolve(ids []string) []*models.Instructor {
	result := make([]*models.Instructor, 0, len(ids))
	for _, id := range ids {
		if i, ok := r.instructors[id]; ok {
			result = append(result, i.Clone())
		}
	}
	return result
}

// Delete removes the instructor from the table and every index
func (r *InstructorRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.instructors[id]
	if !ok {
		return false
	}
	delete(r.instructors, id)
	r.names.Remove(i.Name, id)
	for _, code := range i.CoursesTaught {
		r.byCourse.Remove(code, id)
	}
	r.metrics.setRecords(instructorStore, len(r.instructors))
	r.metrics.observe(instructorStore, "delete", nil)

	logger.Debug().Str("instructorID", id).Msg("Instructor deleted")
	return true
}

// Len returns the number of stored instructors
func (r *InstructorRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instructors)
}
