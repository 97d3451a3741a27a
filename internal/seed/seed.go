package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/registrar/internal/app/models"
	appServices "github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"gopkg.in/yaml.v3"
)

// Enrollment is a fixture row enrolling a student in a course offering
type Enrollment struct {
	StudentID  string `yaml:"studentId"`
	CourseCode string `yaml:"courseCode"`
	Semester   string `yaml:"semester"`
}

// Fixture is the YAML document loaded at startup
type Fixture struct {
	Departments []*appModels.Department `yaml:"departments"`
	Courses     []*appModels.Course     `yaml:"courses"`
	Students    []*appModels.Student    `yaml:"students"`
	Instructors []*appModels.Instructor `yaml:"instructors"`
	Enrollments []Enrollment            `yaml:"enrollments"`
}

// LoadFixture reads and parses a fixture file
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &fixture, nil
}

// CreateDefaultData loads the fixture at path and applies it
func CreateDefaultData(ctx context.Context, path string, svc *appServices.Services, lgr zerolog.Logger) error {
	fixture, err := LoadFixture(path)
	if err != nil {
		return err
	}
	return Apply(ctx, fixture, svc, lgr)
}

// Apply creates every fixture entity through the services. Departments go
// first so courses attach to them. Records that already exist are skipped;
// other failures are collected and returned together after the whole
// fixture has been tried.
func Apply(ctx context.Context, fixture *Fixture, svc *appServices.Services, lgr zerolog.Logger) error {
	lgr.Info().
		Int("departments", len(fixture.Departments)).
		Int("courses", len(fixture.Courses)).
		Int("students", len(fixture.Students)).
		Int("instructors", len(fixture.Instructors)).
		Int("enrollments", len(fixture.Enrollments)).
		Msg("Applying seed data...")

	var finalErr error
	record := func(kind, id string, err error) {
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrResourceAlreadyExists):
			lgr.Debug().Str("kind", kind).Str("id", id).Msg("Seed record already exists, skipping")
		default:
			lgr.Error().Err(err).Str("kind", kind).Str("id", id).Msg("Error creating seed record")
			finalErr = errors.Join(finalErr, fmt.Errorf("%s %q: %w", kind, id, err))
		}
	}

	for _, d := range fixture.Departments {
		record("department", d.ID, svc.DepartmentService.CreateDepartment(ctx, d))
	}
	for _, c := range fixture.Courses {
		record("course", c.Code, svc.CourseService.CreateCourse(ctx, c))
	}
	for _, s := range fixture.Students {
		record("student", s.ID, svc.StudentService.RegisterStudent(ctx, s))
	}
	for _, i := range fixture.Instructors {
		record("instructor", i.ID, svc.InstructorService.CreateInstructor(ctx, i))
	}
	for _, e := range fixture.Enrollments {
		key := appServices.EnrollmentKey{StudentID: e.StudentID, CourseCode: e.CourseCode, Semester: e.Semester}
		record("enrollment", e.StudentID+"/"+e.CourseCode+"/"+e.Semester, svc.EnrollmentService.EnrollStudent(ctx, key))
	}

	if finalErr == nil {
		lgr.Info().Msg("Seed data applied.")
	}
	return finalErr
}
