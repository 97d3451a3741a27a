package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func newTestServices(t *testing.T) (*Services, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories(nil)
	return NewServices(repos), repos
}

func TestRegisterStudentValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	err := svc.StudentService.RegisterStudent(ctx, &models.Student{ID: "S1", Email: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email is required")

	assert.ErrorIs(t, svc.StudentService.RegisterStudent(ctx, nil), apperrors.ErrValidationFailed)

	require.NoError(t, svc.StudentService.RegisterStudent(ctx, &models.Student{ID: "S1", FullName: "John Doe", Email: "j@x.com"}))
	err = svc.StudentService.RegisterStudent(ctx, &models.Student{ID: "S2", FullName: "John Roe", Email: "j@x.com"})
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestStudentServiceLookups(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	require.NoError(t, svc.StudentService.RegisterStudent(ctx, &models.Student{ID: "S1", FullName: "John Doe", Email: "j@x.com"}))

	got, err := svc.StudentService.GetStudentByID(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.FullName)

	_, err = svc.StudentService.GetStudentByID(ctx, "S9")
	assert.ErrorIs(t, err, repositories.ErrStudentNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	assert.Len(t, svc.StudentService.SearchStudentsByName(ctx, "DOE"), 1)
	assert.ErrorIs(t, svc.StudentService.UpdateAttributes(ctx, "S1", nil), apperrors.ErrValidationFailed)
	require.NoError(t, svc.StudentService.UpdateContact(ctx, "S1", "new@x.com", "555"))
	byEmail, err := svc.StudentService.GetStudentByEmail(ctx, "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, "S1", byEmail.ID)
	_, err = svc.StudentService.GetStudentByEmail(ctx, "j@x.com")
	assert.ErrorIs(t, err, repositories.ErrStudentNotFound)

	svc.StudentService.DeleteStudent(ctx, "S1")
	svc.StudentService.DeleteStudent(ctx, "S1")
	assert.Empty(t, svc.StudentService.ListStudents(ctx))
}

func TestCourseServiceKeepsDepartmentInStep(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	require.NoError(t, svc.DepartmentService.CreateDepartment(ctx, &models.Department{ID: "CS", Name: "Computer Science"}))

	require.NoError(t, svc.CourseService.CreateCourse(ctx, &models.Course{Code: "CS201", Department: "CS"}))
	require.NoError(t, svc.CourseService.CreateCourse(ctx, &models.Course{Code: "CS101", Department: "CS"}))
	require.NoError(t, svc.CourseService.CreateCourse(ctx, &models.Course{Code: "PH101", Department: "PHYS"}))

	dept, err := svc.DepartmentService.GetDepartmentByID(ctx, "CS")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101", "CS201"}, dept.Courses)

	courses := svc.CourseService.ListCoursesByDepartment(ctx, "CS")
	require.Len(t, courses, 2)
	assert.Equal(t, "CS101", courses[0].Code)

	svc.CourseService.DeleteCourse(ctx, "CS101")
	dept, _ = svc.DepartmentService.GetDepartmentByID(ctx, "CS")
	assert.Equal(t, []string{"CS201"}, dept.Courses)
	_, err = svc.CourseService.GetCourseByCode(ctx, "CS101")
	assert.ErrorIs(t, err, repositories.ErrCourseNotFound)

	err = svc.CourseService.CreateCourse(ctx, &models.Course{Code: "CS301"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	err = svc.CourseService.CreateCourse(ctx, &models.Course{Code: "CS301", Department: "CS", Prerequisites: []string{"CS101", "CS301"}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	_, err = svc.CourseService.GetCourseByCode(ctx, "CS301")
	assert.ErrorIs(t, err, repositories.ErrCourseNotFound)
	err = svc.CourseService.CreateCourse(ctx, &models.Course{Code: "CS301", Department: "CS", Credits: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDepartmentCourseViewsAgreeAcrossCase(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	require.NoError(t, svc.DepartmentService.CreateDepartment(ctx, &models.Department{ID: "CS", Name: "Computer Science"}))

	require.NoError(t, svc.CourseService.CreateCourse(ctx, &models.Course{Code: "CS201", Department: "cs"}))
	require.NoError(t, svc.CourseService.CreateCourse(ctx, &models.Course{Code: "CS101", Department: "CS"}))

	codes := func() []string {
		var out []string
		for _, c := range svc.CourseService.ListCoursesByDepartment(ctx, "CS") {
			out = append(out, c.Code)
		}
		return out
	}
	dept, err := svc.DepartmentService.GetDepartmentByID(ctx, "CS")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101", "CS201"}, dept.Courses)
	assert.Equal(t, dept.Courses, codes())

	svc.CourseService.DeleteCourse(ctx, "CS201")
	dept, _ = svc.DepartmentService.GetDepartmentByID(ctx, "CS")
	assert.Equal(t, []string{"CS101"}, dept.Courses)
	assert.Equal(t, dept.Courses, codes())
}

func TestDepartmentServiceValidatesName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	err := svc.DepartmentService.CreateDepartment(ctx, &models.Department{ID: "CS"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Contains(t, custom.Details, "name")

	_, err = svc.DepartmentService.GetDepartmentByID(ctx, "CS")
	assert.ErrorIs(t, err, repositories.ErrDepartmentNotFound)
}

func TestInstructorService(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	require.NoError(t, svc.InstructorService.CreateInstructor(ctx, &models.Instructor{ID: "I1", Name: "Ada Lovelace", CoursesTaught: []string{"CS101"}}))
	assert.ErrorIs(t, svc.InstructorService.CreateInstructor(ctx, &models.Instructor{ID: "I1"}), apperrors.ErrResourceAlreadyExists)
	assert.ErrorIs(t, svc.InstructorService.CreateInstructor(ctx, &models.Instructor{}), apperrors.ErrValidationFailed)

	assert.Len(t, svc.InstructorService.ListInstructorsForCourse(ctx, "CS101"), 1)
	assert.Len(t, svc.InstructorService.SearchInstructorsByName(ctx, "ada"), 1)

	svc.InstructorService.DeleteInstructor(ctx, "I1")
	_, err := svc.InstructorService.GetInstructorByID(ctx, "I1")
	assert.ErrorIs(t, err, repositories.ErrInstructorNotFound)
}

func TestEnrollmentServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	key := EnrollmentKey{StudentID: "S1", CourseCode: "CS101", Semester: "Fall2025"}

	assert.ErrorIs(t, svc.EnrollmentService.EnrollStudent(ctx, EnrollmentKey{StudentID: "S1"}), apperrors.ErrValidationFailed)

	require.NoError(t, svc.EnrollmentService.EnrollStudent(ctx, key))
	require.NoError(t, svc.EnrollmentService.RecordGrade(ctx, key, models.GradeTypeFinal, 88))
	require.NoError(t, svc.EnrollmentService.RecordAttendance(ctx, key, 0, true))
	require.NoError(t, svc.EnrollmentService.CompleteEnrollment(ctx, key))
	assert.ErrorIs(t, svc.EnrollmentService.WithdrawEnrollment(ctx, key), apperrors.ErrInvalidTransition)

	records := svc.EnrollmentService.GetEnrollmentsForStudent(ctx, "S1")
	require.Len(t, records, 1)
	assert.Equal(t, models.EnrollmentStatusCompleted, records[0].Status)
	assert.Equal(t, []string{"S1"}, svc.EnrollmentService.GetStudentsForCourse(ctx, "CS101"))

	other := EnrollmentKey{StudentID: "S1", CourseCode: "CS102", Semester: "Fall2025"}
	require.NoError(t, svc.EnrollmentService.EnrollStudent(ctx, other))
	require.NoError(t, svc.EnrollmentService.SetStatus(ctx, other, models.EnrollmentStatusWithdrawn))
	assert.ErrorIs(t, svc.EnrollmentService.SetStatus(ctx, other, models.EnrollmentStatusFailed), apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, svc.EnrollmentService.SetStatus(ctx, other, models.EnrollmentStatusWaitlisted), apperrors.ErrInvalidTransition)

	require.NoError(t, svc.EnrollmentService.SetStatus(ctx, key, models.EnrollmentStatusDropped))
	assert.Empty(t, svc.EnrollmentService.GetStudentsForCourse(ctx, "CS101"))
	assert.ErrorIs(t, svc.EnrollmentService.FailEnrollment(ctx, EnrollmentKey{StudentID: "S2", CourseCode: "CS101", Semester: "Fall2025"}), apperrors.ErrResourceNotFound)
}

func TestNotificationScheduleDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	fixed := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	svc.NotificationService.now = func() time.Time { return fixed }

	n, err := svc.NotificationService.Schedule(ctx, &models.Notification{RecipientID: "S1", Message: "hello", Sent: true})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, fixed, n.ScheduledTime)
	assert.False(t, n.Sent)

	again, err := svc.NotificationService.Schedule(ctx, &models.Notification{ID: n.ID, RecipientID: "S2", Message: "other"})
	require.NoError(t, err)
	assert.Equal(t, "hello", again.Message)

	_, err = svc.NotificationService.Schedule(ctx, &models.Notification{Message: "no recipient"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Len(t, svc.NotificationService.ListPending(ctx), 1)
	require.NoError(t, svc.NotificationService.MarkSent(ctx, n.ID))
	assert.Empty(t, svc.NotificationService.ListPending(ctx))
	assert.Len(t, svc.NotificationService.ListForRecipient(ctx, "S1"), 1)

	require.NoError(t, svc.NotificationService.DeleteNotification(ctx, n.ID))
	assert.ErrorIs(t, svc.NotificationService.DeleteNotification(ctx, n.ID), repositories.ErrNotificationNotFound)
	_, err = svc.NotificationService.GetNotification(ctx, n.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
