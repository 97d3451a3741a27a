package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/controllers"
	"github.com/yigit/registrar/internal/pkg/websocket"
)

// Controllers groups every controller mounted by SetupRouter
type Controllers struct {
	Student      *controllers.StudentController
	Instructor   *controllers.InstructorController
	Department   *controllers.DepartmentController
	Course       *controllers.CourseController
	Enrollment   *controllers.EnrollmentController
	Notification *controllers.NotificationController
	Report       *controllers.ReportController
	Health       *controllers.HealthController
	Stream       *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Health)

	students := v1.Group("/students")
	{
		students.POST("", c.Student.CreateStudent)
		students.GET("", c.Student.ListStudents)
		students.GET("/:id", c.Student.GetStudentByID)
		students.PATCH("/:id/contact", c.Student.UpdateContact)
		students.PATCH("/:id/attributes", c.Student.UpdateAttributes)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.GET("/:id/enrollments", c.Enrollment.GetStudentEnrollments)
		students.GET("/:id/gpa", c.Report.GetStudentGPA)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.POST("", c.Instructor.CreateInstructor)
		instructors.GET("", c.Instructor.SearchInstructors)
		instructors.GET("/:id", c.Instructor.GetInstructorByID)
		instructors.DELETE("/:id", c.Instructor.DeleteInstructor)
	}

	departments := v1.Group("/departments")
	{
		departments.POST("", c.Department.CreateDepartment)
		departments.GET("", c.Department.GetAllDepartments)
		departments.GET("/:id", c.Department.GetDepartmentByID)
		departments.GET("/:id/courses", c.Department.GetDepartmentCourses)
		departments.DELETE("/:id", c.Department.DeleteDepartment)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:code", c.Course.GetCourseByCode)
		courses.DELETE("/:code", c.Course.DeleteCourse)
		courses.GET("/:code/instructors", c.Instructor.ListInstructorsForCourse)
		courses.GET("/:code/roster", c.Enrollment.GetCourseRoster)
		courses.GET("/:code/semesters/:semester/enrollments", c.Enrollment.GetOfferingEnrollments)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", c.Enrollment.Enroll)
		enrollments.POST("/drop", c.Enrollment.Drop)
		enrollments.POST("/status", c.Enrollment.SetStatus)
		enrollments.POST("/grades", c.Enrollment.RecordGrade)
		enrollments.POST("/attendance", c.Enrollment.RecordAttendance)
	}

	notifications := v1.Group("/notifications")
	{
		notifications.POST("", c.Notification.ScheduleNotification)
		notifications.GET("", c.Notification.ListNotifications)
		notifications.GET("/:id", c.Notification.GetNotification)
		notifications.POST("/:id/sent", c.Notification.MarkSent)
		notifications.DELETE("/:id", c.Notification.DeleteNotification)
	}

	// Live delivery of due notifications
	v1.GET("/ws/notifications/:recipient", c.Stream.HandleConnection)

	reports := v1.Group("/reports")
	{
		reports.GET("/top", c.Report.GetTopStudents)
		reports.GET("/distribution", c.Report.GetGradeDistribution)
		reports.GET("/attendance", c.Report.GetAttendance)
		reports.GET("/export/:type", c.Report.ExportReport)
		reports.POST("/archive/:type", c.Report.ArchiveReport)
		reports.DELETE("/archive/*path", c.Report.DeleteArchivedReport)
	}
}
