package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func TestEnrollmentStatusCodes(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want EnrollmentStatus
	}{
		{"COMPLETED", EnrollmentStatusCompleted},
		{"c", EnrollmentStatusCompleted},
		{" WL ", EnrollmentStatusWaitlisted},
		{"withdrawn", EnrollmentStatusWithdrawn},
	} {
		got, err := ParseEnrollmentStatus(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseEnrollmentStatus("X")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	_, err = ParseEnrollmentStatusCode("e")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Equal(t, "WL", EnrollmentStatusWaitlisted.Code())
	assert.NotEmpty(t, EnrollmentStatusFailed.Description())
	assert.False(t, EnrollmentStatus("PAUSED").Valid())
}

func TestGradeTypeCodes(t *testing.T) {
	for _, gradeType := range GradeTypes {
		got, err := ParseGradeTypeCode(gradeType.Code())
		require.NoError(t, err)
		assert.Equal(t, gradeType, got)
	}

	got, err := ParseGradeType("midterm")
	require.NoError(t, err)
	assert.Equal(t, GradeTypeMidterm, got)
	assert.Equal(t, "Midterm Exam", got.Label())

	_, err = ParseGradeType("Z")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseNormalizeOrdersSlots(t *testing.T) {
	c := &Course{
		Code:          "CS101",
		Prerequisites: []string{"MATH101", "CS100", "MATH101"},
		ScheduledSlots: []TimeSlot{
			{Day: time.Sunday, Start: "09:00", End: "10:00"},
			{Day: time.Monday, Start: "13:00", End: "14:00"},
			{Day: time.Monday, Start: "09:00", End: "10:30"},
			{Day: time.Monday, Start: "09:00", End: "10:00"},
			{Day: time.Monday, Start: "09:00", End: "10:00"},
		},
	}
	c.Normalize()

	assert.Equal(t, []string{"CS100", "MATH101"}, c.Prerequisites)
	assert.Equal(t, []TimeSlot{
		{Day: time.Monday, Start: "09:00", End: "10:00"},
		{Day: time.Monday, Start: "09:00", End: "10:30"},
		{Day: time.Monday, Start: "13:00", End: "14:00"},
		{Day: time.Sunday, Start: "09:00", End: "10:00"},
	}, c.ScheduledSlots)
	assert.True(t, c.HasPrerequisite("CS100"))
	assert.Equal(t, "Monday 09:00-10:00", c.ScheduledSlots[0].String())
}

func TestClonesAreIndependent(t *testing.T) {
	s := &Student{ID: "S1", Attributes: map[string]string{"year": "2"}}
	sc := s.Clone()
	sc.Attributes["year"] = "3"
	assert.Equal(t, "2", s.Attributes["year"])

	e := &Enrollment{Grades: map[GradeType]float64{GradeTypeQuiz: 80}, Attendance: []bool{true}}
	ec := e.Clone()
	ec.Grades[GradeTypeQuiz] = 10
	ec.Attendance[0] = false
	assert.Equal(t, 80.0, e.Grades[GradeTypeQuiz])
	assert.True(t, e.Attendance[0])

	var nilCourse *Course
	assert.Nil(t, nilCourse.Clone())
}

func TestEnrollmentAggregates(t *testing.T) {
	e := &Enrollment{}
	_, ok := e.AverageGrade()
	assert.False(t, ok)

	e.Grades = map[GradeType]float64{GradeTypeQuiz: 70, GradeTypeFinal: 90}
	avg, ok := e.AverageGrade()
	require.True(t, ok)
	assert.Equal(t, 80.0, avg)

	e.Attendance = []bool{true, false, true}
	present, total := e.AttendedSessions()
	assert.Equal(t, 2, present)
	assert.Equal(t, 3, total)
}
