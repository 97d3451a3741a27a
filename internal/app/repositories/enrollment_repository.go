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

const (
	enrollmentStore = "enrollment"

	// MaxGrade is the upper bound of a numeric grade
	MaxGrade = 100
	// MaxSessions bounds the attendance session index
	MaxSessions = 512
)

// Enrollment error types
var (
	ErrEnrollmentNotFound  = apperrors.NewResourceNotFoundError("enrollment not found")
	ErrInvalidEnrollment   = apperrors.NewValidationError("student id, course code and semester must not be empty")
	ErrInvalidGrade        = apperrors.NewValidationError("grade must be a known grade type with a value between 0 and 100")
	ErrInvalidSession      = apperrors.NewValidationError("attendance session index is out of range")
	ErrInvalidStatusChange = apperrors.NewCustomError(apperrors.ErrInvalidTransition, "only ENROLLED records can move to COMPLETED, FAILED or WITHDRAWN")
)

// EnrollmentRepository keeps enrollment records per student and a roster
// index from course code to student ids. Duplicate enrollments are allowed.
type EnrollmentRepository struct {
	mu        sync.RWMutex
	byStudent map[string][]*models.Enrollment
	roster    *index.SetIndex
	records   int
	metrics   *Metrics
}

// NewEnrollmentRepository creates an empty enrollment store
func NewEnrollmentRepository(metrics *Metrics) *EnrollmentRepository {
	return &EnrollmentRepository{
		byStudent: make(map[string][]*models.Enrollment),
		roster:    index.NewSetIndex(),
		metrics:   metrics,
	}
}

func validKey(studentID, courseCode, semester string) error {
	if strings.TrimSpace(studentID) == "" || strings.TrimSpace(courseCode) == "" || strings.TrimSpace(semester) == "" {
		return ErrInvalidEnrollment
	}
	return nil
}

// Enroll appends a new ENROLLED record and adds the student to the course
// roster. An existing record for the same key is not checked for.
func (r *EnrollmentRepository) Enroll(_ context.Context, studentID, courseCode, semester string) (err error) {
	defer func() { r.metrics.observe(enrollmentStore, "enroll", err) }()

	if err := validKey(studentID, courseCode, semester); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byStudent[studentID] = append(r.byStudent[studentID], &models.Enrollment{
		StudentID:  studentID,
		CourseCode: courseCode,
		Semester:   semester,
		Status:     models.EnrollmentStatusEnrolled,
		Grades:     make(map[models.GradeType]float64),
	})
	r.roster.Add(courseCode, studentID)
	r.records++
	r.metrics.setRecords(enrollmentStore, r.records)

	logger.Debug().Str("studentID", studentID).Str("courseCode", courseCode).Str("semester", semester).Msg("Student enrolled")
	return nil
}

// Drop marks every matching record DROPPED and removes the student from the
// course roster, even when no record matched or another semester is still
// active. It returns the number of records changed.
func (r *EnrollmentRepository) Drop(_ context.Context, studentID, courseCode, semester string) (n int, err error) {
	defer func() { r.metrics.observe(enrollmentStore, "drop", err) }()

	if err := validKey(studentID, courseCode, semester); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.byStudent[studentID] {
		if e.Matches(courseCode, semester) {
			e.Status = models.EnrollmentStatusDropped
			n++
		}
	}
	r.roster.Remove(courseCode, studentID)

	logger.Debug().Str("studentID", studentID).Str("courseCode", courseCode).Int("records", n).Msg("Student dropped")
	return n, nil
}

// SetStatus moves matching ENROLLED records to a terminal status. Only
// COMPLETED, FAILED and WITHDRAWN are accepted; the roster is left as is.
func (r *EnrollmentRepository) SetStatus(_ context.Context, studentID, courseCode, semester string, status models.EnrollmentStatus) (n int, err error) {
	defer func() { r.metrics.observe(enrollmentStore, "set_status", err) }()

	if err := validKey(studentID, courseCode, semester); err != nil {
		return 0, err
	}
	switch status {
	case models.EnrollmentStatusCompleted, models.EnrollmentStatusFailed, models.EnrollmentStatusWithdrawn:
	default:
		return 0, fmt.Errorf("%w: target %q", ErrInvalidStatusChange, status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matched := 0
	for _, e := range r.byStudent[studentID] {
		if !e.Matches(courseCode, semester) {
			continue
		}
		matched++
		if e.Status == models.EnrollmentStatusEnrolled {
			e.Status = status
			n++
		}
	}

	switch {
	case matched == 0:
		return 0, fmt.Errorf("%w: %s/%s/%s", ErrEnrollmentNotFound, studentID, courseCode, semester)
	case n == 0:
		logger.Warn().Str("studentID", studentID).Str("courseCode", courseCode).Str("target", string(status)).Msg("No ENROLLED record to transition")
		return 0, fmt.Errorf("%w: no ENROLLED record for %s/%s/%s", ErrInvalidStatusChange, studentID, courseCode, semester)
	}
	return n, nil
}

// RecordGrade sets the grade of the given type on every matching record
func (r *EnrollmentRepository) RecordGrade(_ context.Context, studentID, courseCode, semester string, gradeType models.GradeType, value float64) (err error) {
	defer func() { r.metrics.observe(enrollmentStore, "record_grade", err) }()

	if err := validKey(studentID, courseCode, semester); err != nil {
		return err
	}
	if !gradeType.Valid() || value < 0 || value > MaxGrade {
		return fmt.Errorf("%w: %s=%v", ErrInvalidGrade, gradeType, value)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.updateMatching(studentID, courseCode, semester, func(e *models.Enrollment) {
		if e.Grades == nil {
			e.Grades = make(map[models.GradeType]float64)
		}
		e.Grades[gradeType] = value
	})
}

// RecordAttendance marks a session present or absent on every matching
// record, growing the attendance list as needed
func (r *EnrollmentRepository) RecordAttendance(_ context.Context, studentID, courseCode, semester string, session int, present bool) (err error) {
	defer func() { r.metrics.observe(enrollmentStore, "record_attendance", err) }()

	if err := validKey(studentID, courseCode, semester); err != nil {
		return err
	}
	if session < 0 || session >= MaxSessions {
		return fmt.Errorf("%w: %d", ErrInvalidSession, session)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.updateMatching(studentID, courseCode, semester, func(e *models.Enrollment) {
		if session >= len(e.Attendance) {
			e.Attendance = append(e.Attendance, make([]bool, session+1-len(e.Attendance))...)
		}
		e.Attendance[session] = present
	})
}

// updateMatching applies fn to each matching record. Caller holds the write lock.
func (r *EnrollmentRepository) updateMatching(studentID, courseCode, semester string, fn func(*models.Enrollment)) error {
	matched := 0
	for _, e := range r.byStudent[studentID] {
		if e.Matches(courseCode, semester) {
			fn(e)
			matched++
		}
	}
	if matched == 0 {
		return fmt.Errorf("%w: %s/%s/%s", ErrEnrollmentNotFound, studentID, courseCode, semester)
	}
	return nil
}

// ForStudent returns copies of the student's records in enrollment order
func (r *EnrollmentRepository) ForStudent(_ context.Context, studentID string) []*models.Enrollment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.byStudent[studentID]
	result := make([]*models.Enrollment, 0, len(records))
	for _, e := range records {
		result = append(result, e.Clone())
	}
	return result
}

// StudentsForCourse returns the ids on the course roster in ascending order
func (r *EnrollmentRepository) StudentsForCourse(_ context.Context, courseCode string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.roster.Members(courseCode)
}

// ListForCourse returns every record for the course and semester regardless
// of roster membership, ordered by student id
func (r *EnrollmentRepository) ListForCourse(_ context.Context, courseCode, semester string) []*models.Enrollment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Enrollment, 0)
	for _, id := range slices.Sorted(maps.Keys(r.byStudent)) {
		for _, e := range r.byStudent[id] {
			if e.Matches(courseCode, semester) {
				result = append(result, e.Clone())
			}
		}
	}
	return result
}

// Len returns the total number of enrollment records
func (r *EnrollmentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records
}
