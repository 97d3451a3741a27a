package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func courseCodes(courses []*models.Course) []string {
	codes := make([]string, 0, len(courses))
	for _, c := range courses {
		codes = append(codes, c.Code)
	}
	return codes
}

func TestCourseListByDepartmentAscending(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository(nil)
	for _, code := range []string{"CS201", "CS101", "CS301"} {
		require.NoError(t, repo.Create(ctx, &models.Course{Code: code, Department: "CS"}))
	}
	require.NoError(t, repo.Create(ctx, &models.Course{Code: "MA101", Department: "MATH"}))

	assert.Equal(t, []string{"CS101", "CS201", "CS301"}, courseCodes(repo.ListByDepartment(ctx, "CS")))
	assert.Equal(t, []string{"CS101", "CS201", "CS301"}, courseCodes(repo.ListByDepartment(ctx, "cs")))
	assert.Empty(t, repo.ListByDepartment(ctx, "PHYS"))
}

func TestCourseDeletePrunesDepartmentBucket(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository(nil)
	require.NoError(t, repo.Create(ctx, &models.Course{Code: "CS101", Department: "CS"}))

	assert.True(t, repo.Delete(ctx, "CS101"))
	assert.False(t, repo.byDepartment.HasKey("CS"))
	assert.Zero(t, repo.byDepartment.Len())
	assert.False(t, repo.Delete(ctx, "CS101"))
}

func TestCourseDuplicateCodeRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository(nil)
	require.NoError(t, repo.Create(ctx, &models.Course{Code: "CS101", Title: "Intro", Department: "CS"}))

	err := repo.Create(ctx, &models.Course{Code: "CS101", Title: "Other", Department: "EE"})
	assert.ErrorIs(t, err, ErrCourseAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	got, ok := repo.GetByCode(ctx, "CS101")
	require.True(t, ok)
	assert.Equal(t, "Intro", got.Title)
	assert.Empty(t, repo.ListByDepartment(ctx, "EE"))
	assert.ErrorIs(t, repo.Create(ctx, &models.Course{Code: ""}), apperrors.ErrValidationFailed)
}

func TestCourseCreateNormalizes(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseRepository(nil)
	require.NoError(t, repo.Create(ctx, &models.Course{
		Code:          "CS201",
		Department:    "CS",
		Prerequisites: []string{"CS102", "CS101", "CS102"},
		ScheduledSlots: []models.TimeSlot{
			{Day: time.Wednesday, Start: "09:00", End: "10:00"},
			{Day: time.Monday, Start: "13:00", End: "14:00"},
			{Day: time.Sunday, Start: "08:00", End: "09:00"},
		},
	}))

	got, _ := repo.GetByCode(ctx, "CS201")
	assert.Equal(t, []string{"CS101", "CS102"}, got.Prerequisites)
	require.Len(t, got.ScheduledSlots, 3)
	assert.Equal(t, time.Monday, got.ScheduledSlots[0].Day)
	assert.Equal(t, time.Sunday, got.ScheduledSlots[2].Day)
}

func TestInstructorIndexes(t *testing.T) {
	ctx := context.Background()
	repo := NewInstructorRepository(nil)
	require.NoError(t, repo.Create(ctx, &models.Instructor{ID: "I2", Name: "Grace Hopper", CoursesTaught: []string{"CS101"}}))
	require.NoError(t, repo.Create(ctx, &models.Instructor{ID: "I1", Name: "Ada Lovelace", CoursesTaught: []string{"CS201", "CS101", "CS101"}}))

	byCourse := repo.ListByCourse(ctx, "CS101")
	require.Len(t, byCourse, 2)
	assert.Equal(t, "I1", byCourse[0].ID)
	assert.Equal(t, "I2", byCourse[1].ID)

	found := repo.SearchByNameToken(ctx, "LOVELACE")
	require.Len(t, found, 1)
	assert.Equal(t, []string{"CS101", "CS201"}, found[0].CoursesTaught)

	assert.True(t, repo.Delete(ctx, "I1"))
	assert.Empty(t, repo.SearchByNameToken(ctx, "ada"))
	assert.False(t, repo.byCourse.HasKey("CS201"))
	assert.Len(t, repo.ListByCourse(ctx, "CS101"), 1)
	assert.Len(t, repo.List(ctx), 1)

	err := repo.Create(ctx, &models.Instructor{ID: "I2", Name: "Someone Else"})
	assert.ErrorIs(t, err, ErrInstructorAlreadyExists)
	assert.Empty(t, repo.SearchByNameToken(ctx, "someone"))
}

func TestDepartmentListAllAndCourseSet(t *testing.T) {
	ctx := context.Background()
	repo := NewDepartmentRepository(nil)
	require.NoError(t, repo.Create(ctx, &models.Department{ID: "MATH", Name: "Mathematics"}))
	require.NoError(t, repo.Create(ctx, &models.Department{ID: "CS", Name: "Computer Science", Courses: []string{"CS201", "CS101", "CS201"}}))

	all := repo.ListAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "CS", all[0].ID)
	assert.Equal(t, "MATH", all[1].ID)
	assert.Equal(t, []string{"CS101", "CS201"}, all[0].Courses)

	require.NoError(t, repo.AttachCourse(ctx, "CS", "CS150"))
	require.NoError(t, repo.AttachCourse(ctx, "CS", "CS150"))
	repo.DetachCourse(ctx, "CS", "CS101")
	repo.DetachCourse(ctx, "NOPE", "CS101")

	got, ok := repo.GetByID(ctx, "CS")
	require.True(t, ok)
	assert.Equal(t, []string{"CS150", "CS201"}, got.Courses)

	assert.ErrorIs(t, repo.AttachCourse(ctx, "NOPE", "X1"), ErrDepartmentNotFound)
	assert.ErrorIs(t, repo.Create(ctx, &models.Department{ID: "CS"}), apperrors.ErrResourceAlreadyExists)

	assert.True(t, repo.Delete(ctx, "CS"))
	assert.False(t, repo.Delete(ctx, "CS"))
	assert.Equal(t, 1, repo.Len())
}

func TestDepartmentIDsMatchIgnoringCase(t *testing.T) {
	ctx := context.Background()
	repo := NewDepartmentRepository(nil)
	require.NoError(t, repo.Create(ctx, &models.Department{ID: "CS", Name: "Computer Science"}))

	err := repo.Create(ctx, &models.Department{ID: "cs", Name: "Duplicate"})
	assert.ErrorIs(t, err, ErrDepartmentAlreadyExists)
	assert.Equal(t, 1, repo.Len())

	require.NoError(t, repo.AttachCourse(ctx, "cs", "CS201"))
	require.NoError(t, repo.AttachCourse(ctx, "CS", "CS101"))

	got, ok := repo.GetByID(ctx, "cS")
	require.True(t, ok)
	assert.Equal(t, "CS", got.ID)
	assert.Equal(t, []string{"CS101", "CS201"}, got.Courses)

	repo.DetachCourse(ctx, "Cs", "CS201")
	got, _ = repo.GetByID(ctx, "CS")
	assert.Equal(t, []string{"CS101"}, got.Courses)

	assert.True(t, repo.Delete(ctx, "cs"))
	_, ok = repo.GetByID(ctx, "CS")
	assert.False(t, ok)
	require.NoError(t, repo.Create(ctx, &models.Department{ID: "cs", Name: "Recreated"}))
}
