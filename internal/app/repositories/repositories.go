package repositories

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	InstructorRepository   *InstructorRepository
	CourseRepository       *CourseRepository
	DepartmentRepository   *DepartmentRepository
	EnrollmentRepository   *EnrollmentRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories. metrics may be nil.
func NewRepositories(metrics *Metrics) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(metrics),
		InstructorRepository:   NewInstructorRepository(metrics),
		CourseRepository:       NewCourseRepository(metrics),
		DepartmentRepository:   NewDepartmentRepository(metrics),
		EnrollmentRepository:   NewEnrollmentRepository(metrics),
		NotificationRepository: NewNotificationRepository(metrics),
	}
}
