package services

import "github.com/yigit/registrar/internal/app/repositories"

// Services defined in this package:
// - StudentService: registration, contact and attribute updates
// - InstructorService: instructors and the courses they teach
// - CourseService: course catalog, kept in step with departments
// - DepartmentService: departments
// - EnrollmentService: enrollment lifecycle, grades and attendance
// - NotificationService: scheduled notifications
// - ReportService: GPA, distributions and report export
type Services struct {
	StudentService      *StudentService
	InstructorService   InstructorService
	CourseService       *CourseService
	DepartmentService   *DepartmentService
	EnrollmentService   *EnrollmentService
	NotificationService *NotificationService
	ReportService       *ReportService
}

// NewServices wires every service to the given repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		StudentService:      NewStudentService(repos.StudentRepository),
		InstructorService:   NewInstructorService(repos.InstructorRepository),
		CourseService:       NewCourseService(repos.CourseRepository, repos.DepartmentRepository),
		DepartmentService:   NewDepartmentService(repos.DepartmentRepository),
		EnrollmentService:   NewEnrollmentService(repos.EnrollmentRepository),
		NotificationService: NewNotificationService(repos.NotificationRepository),
		ReportService:       NewReportService(repos.StudentRepository, repos.CourseRepository, repos.EnrollmentRepository),
	}
}
