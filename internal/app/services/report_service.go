package services

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/grading"
	"github.com/yigit/registrar/internal/pkg/logger"
	"gopkg.in/yaml.v3"
)

// Report types accepted by BuildReport and ExportReport
const (
	ReportTypeGPA    = "gpa"
	ReportTypeRoster = "roster"
)

// StudentGPA pairs a student with their computed GPA
type StudentGPA struct {
	StudentID string  `json:"studentId" yaml:"studentId"`
	FullName  string  `json:"fullName" yaml:"fullName"`
	GPA       float64 `json:"gpa" yaml:"gpa"`
}

// CourseRoster lists the students currently on a course roster
type CourseRoster struct {
	CourseCode string   `json:"courseCode" yaml:"courseCode"`
	Title      string   `json:"title" yaml:"title"`
	Department string   `json:"department" yaml:"department"`
	Students   []string `json:"students" yaml:"students"`
}

// Report is the document written by ExportReport
type Report struct {
	Type        string         `json:"type" yaml:"type"`
	GeneratedAt time.Time      `json:"generatedAt" yaml:"generatedAt"`
	GPA         []StudentGPA   `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Rosters     []CourseRoster `json:"rosters,omitempty" yaml:"rosters,omitempty"`
}

// ReportService computes read-only aggregates over the stores
type ReportService struct {
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	now            func() time.Time
}

// NewReportService creates a new report service instance
func NewReportService(
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
) *ReportService {
	return &ReportService{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		now:            time.Now,
	}
}

// ComputeGPA averages the grades of each COMPLETED enrollment, converts the
// average to 4.0-scale points and returns the mean of those points. Records
// without grades are skipped. A student with nothing to count has GPA 0.
func (s *ReportService) ComputeGPA(ctx context.Context, studentID string) float64 {
	var total float64
	var counted int
	for _, e := range s.enrollmentRepo.ForStudent(ctx, studentID) {
		if e.Status != models.EnrollmentStatusCompleted {
			continue
		}
		avg, ok := e.AverageGrade()
		if !ok {
			continue
		}
		total += grading.NumericToGPA(avg)
		counted++
	}
	if counted == 0 {
		return 0
	}
	return total / float64(counted)
}

// TopNStudentsByGPA ranks registered students by GPA, highest first, with
// ties broken by ascending student ID
func (s *ReportService) TopNStudentsByGPA(ctx context.Context, n int) []StudentGPA {
	if n <= 0 {
		return []StudentGPA{}
	}
	ranked := s.allGPAs(ctx)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (s *ReportService) allGPAs(ctx context.Context) []StudentGPA {
	students := s.studentRepo.List(ctx)
	ranked := make([]StudentGPA, 0, len(students))
	for _, st := range students {
		ranked = append(ranked, StudentGPA{
			StudentID: st.ID,
			FullName:  st.FullName,
			GPA:       s.ComputeGPA(ctx, st.ID),
		})
	}
	slices.SortStableFunc(ranked, func(a, b StudentGPA) int {
		if c := cmp.Compare(b.GPA, a.GPA); c != 0 {
			return c
		}
		return cmp.Compare(a.StudentID, b.StudentID)
	})
	return ranked
}

// GradeDistribution counts recorded grades per grade type across every
// enrollment of the course offering
func (s *ReportService) GradeDistribution(ctx context.Context, courseCode, semester string) map[models.GradeType]int {
	dist := make(map[models.GradeType]int)
	for _, e := range s.enrollmentRepo.ListForCourse(ctx, courseCode, semester) {
		for gradeType := range e.Grades {
			dist[gradeType]++
		}
	}
	return dist
}

// AttendancePercentage returns present sessions over recorded sessions as a
// percentage, or 0 when no session was recorded
func (s *ReportService) AttendancePercentage(ctx context.Context, studentID, courseCode, semester string) float64 {
	var present, total int
	for _, e := range s.enrollmentRepo.ForStudent(ctx, studentID) {
		if !e.Matches(courseCode, semester) {
			continue
		}
		p, t := e.AttendedSessions()
		present += p
		total += t
	}
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// BuildReport assembles a report of the given type
func (s *ReportService) BuildReport(ctx context.Context, reportType string) (*Report, error) {
	report := &Report{
		Type:        strings.ToLower(strings.TrimSpace(reportType)),
		GeneratedAt: s.now().UTC(),
	}

	switch report.Type {
	case ReportTypeGPA:
		report.GPA = s.allGPAs(ctx)
	case ReportTypeRoster:
		courses := s.courseRepo.List(ctx)
		report.Rosters = make([]CourseRoster, 0, len(courses))
		for _, c := range courses {
			report.Rosters = append(report.Rosters, CourseRoster{
				CourseCode: c.Code,
				Title:      c.Title,
				Department: c.Department,
				Students:   s.enrollmentRepo.StudentsForCourse(ctx, c.Code),
			})
		}
	default:
		return nil, fmt.Errorf("%w: unknown report type %q", apperrors.ErrValidationFailed, reportType)
	}
	return report, nil
}

// EncodeReport renders the report as YAML when format is "yaml" or "yml"
// and as indented JSON otherwise
func EncodeReport(report *Report, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return nil, fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml report: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json report: %w", err)
		}
		return append(data, '\n'), nil
	}
}

// ExportReport builds the report and writes it to path, choosing the format
// from the file extension
func (s *ReportService) ExportReport(ctx context.Context, reportType, path string) error {
	if err := requireNotBlank("path", path); err != nil {
		return err
	}
	report, err := s.BuildReport(ctx, reportType)
	if err != nil {
		return err
	}
	data, err := EncodeReport(report, filepath.Ext(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info().Str("type", report.Type).Str("path", path).Int("bytes", len(data)).Msg("Report exported")
	return nil
}
