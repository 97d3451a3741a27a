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

const studentStore = "student"

// Student error types
var (
	ErrStudentNotFound      = apperrors.NewResourceNotFoundError("student not found")
	ErrStudentAlreadyExists = apperrors.NewAlreadyExistsError("student with this id or email already exists")
	ErrInvalidStudent       = apperrors.NewValidationError("student and its id must not be empty")
)

// StudentRepository keeps students by id with a unique email index and a
// name-token index.
type StudentRepository struct {
	mu        sync.RWMutex
	students  map[string]*models.Student
	emailToID map[string]string
	names     *index.NameTokenIndex
	metrics   *Metrics
}

// NewStudentRepository creates an empty student store
func NewStudentRepository(metrics *Metrics) *StudentRepository {
	return &StudentRepository{
		students:  make(map[string]*models.Student),
		emailToID: make(map[string]string),
		names:     index.NewNameTokenIndex(),
		metrics:   metrics,
	}
}

// Create stores a copy of student. Neither the id nor the email may already
// be taken; on failure no index is touched.
func (r *StudentRepository) Create(_ context.Context, student *models.Student) (err error) {
	defer func() { r.metrics.observe(studentStore, "create", err) }()

	if student == nil || strings.TrimSpace(student.ID) == "" {
		return ErrInvalidStudent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.students[student.ID]; exists {
		logger.Warn().Str("studentID", student.ID).Msg("Attempted to create student with duplicate student ID")
		return fmt.Errorf("%w: id %q", ErrStudentAlreadyExists, student.ID)
	}
	email := normalizeEmail(student.Email)
	if owner, taken := r.emailToID[email]; taken {
		logger.Warn().Str("studentID", student.ID).Str("owner", owner).Msg("Attempted to create student with duplicate email")
		return fmt.Errorf("%w: email %q", ErrStudentAlreadyExists, email)
	}

	stored := student.Clone()
	stored.Email = email
	r.students[stored.ID] = stored
	r.emailToID[stored.Email] = stored.ID
	r.names.Add(stored.FullName, stored.ID)
	r.metrics.setRecords(studentStore, len(r.students))

	logger.Debug().Str("studentID", stored.ID).Msg("Student created")
	return nil
}

// normalizeEmail is applied to every email before it is stored, indexed or
// looked up
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// GetByID returns a copy of the student, or false if there is none
func (r *StudentRepository) GetByID(_ context.Context, id string) (*models.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// GetByEmail returns a copy of the student owning email, or false
func (r *StudentRepository) GetByEmail(_ context.Context, email string) (*models.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emailToID[normalizeEmail(email)]
	if !ok {
		return nil, false
	}
	s, ok := r.students[id]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// SearchByNameToken returns the students whose name contains token as a whole
// word, compared case-insensitively, ordered by id
func (r *StudentRepository) SearchByNameToken(_ context.Context, token string) []*models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.names.Lookup(token)
	result := make([]*models.Student, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.students[id]; ok {
			result = append(result, s.Clone())
		}
	}
	return result
}

// List returns every student ordered by id
func (r *StudentRepository) List(_ context.Context) []*models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Student, 0, len(r.students))
	for _, id := range slices.Sorted(maps.Keys(r.students)) {
		result = append(result, r.students[id].Clone())
	}
	return result
}

// UpdateContact changes the email and phone of a student. Blank values leave
// the field as it is. The email index follows the change.
func (r *StudentRepository) UpdateContact(_ context.Context, id, email, phone string) (err error) {
	defer func() { r.metrics.observe(studentStore, "update_contact", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.students[id]
	if !ok {
		return fmt.Errorf("%w: id %q", ErrStudentNotFound, id)
	}

	email = normalizeEmail(email)
	if email != "" && email != s.Email {
		if owner, taken := r.emailToID[email]; taken && owner != id {
			logger.Warn().Str("studentID", id).Str("owner", owner).Msg("Attempted to move student to an email already in use")
			return fmt.Errorf("%w: email %q", ErrStudentAlreadyExists, email)
		}
		if r.emailToID[s.Email] == id {
			delete(r.emailToID, s.Email)
		}
		s.Email = email
		r.emailToID[email] = id
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		s.Phone = phone
	}

	logger.Debug().Str("studentID", id).Msg("Student contact updated")
	return nil
}

// UpdateAttributes merges attrs into the student's attribute map
func (r *StudentRepository) UpdateAttributes(_ context.Context, id string, attrs map[string]string) (err error) {
	defer func() { r.metrics.observe(studentStore, "update_attributes", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.students[id]
	if !ok {
		return fmt.Errorf("%w: id %q", ErrStudentNotFound, id)
	}
	if s.Attributes == nil {
		s.Attributes = make(map[string]string, len(attrs))
	}
	maps.Copy(s.Attributes, attrs)
	return nil
}

// Delete removes the student and its index entries. It reports whether a
// student was removed; an unknown id is a no-op.
func (r *StudentRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.students[id]
	if !ok {
		return false
	}
	delete(r.students, id)
	if r.emailToID[s.Email] == id {
		delete(r.emailToID, s.Email)
	}
	r.names.Remove(s.FullName, id)
	r.metrics.setRecords(studentStore, len(r.students))
	r.metrics.observe(studentStore, "delete", nil)

	logger.Debug().Str("studentID", id).Msg("Student deleted")
	return true
}

// Len returns the number of stored students
func (r *StudentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}
