package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
)

// EnrollmentController handles enrollment lifecycle endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

func toKey(r dto.EnrollmentRequest) services.EnrollmentKey {
	return services.EnrollmentKey{
		StudentID:  r.StudentID,
		CourseCode: r.CourseCode,
		Semester:   r.Semester,
	}
}

// Enroll handles POST /enrollments
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if err := c.enrollmentService.EnrollStudent(ctx, toKey(req)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(req, "Student enrolled successfully"))
}

// Drop handles POST /enrollments/drop
func (c *EnrollmentController) Drop(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if err := c.enrollmentService.DropStudent(ctx, toKey(req)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(req, "Student dropped successfully"))
}

// SetStatus handles POST /enrollments/status
func (c *EnrollmentController) SetStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	status, err := models.ParseEnrollmentStatus(req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.enrollmentService.SetStatus(ctx, toKey(req.EnrollmentRequest), status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(req, "Enrollment status updated"))
}

// RecordGrade handles POST /enrollments/grades
func (c *EnrollmentController) RecordGrade(ctx *gin.Context) {
	var req dto.GradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	gradeType, err := models.ParseGradeType(req.GradeType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.enrollmentService.RecordGrade(ctx, toKey(req.EnrollmentRequest), gradeType, *req.Value); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(req, "Grade recorded"))
}

// RecordAttendance handles POST /enrollments/attendance
func (c *EnrollmentController) RecordAttendance(ctx *gin.Context) {
	var req dto.AttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	err := c.enrollmentService.RecordAttendance(ctx, toKey(req.EnrollmentRequest), *req.Session, req.Present)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(req, "Attendance recorded"))
}

// GetStudentEnrollments handles GET /students/:id/enrollments
func (c *EnrollmentController) GetStudentEnrollments(ctx *gin.Context) {
	records := c.enrollmentService.GetEnrollmentsForStudent(ctx, ctx.Param("id"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}

// GetCourseRoster handles GET /courses/:code/roster
func (c *EnrollmentController) GetCourseRoster(ctx *gin.Context) {
	roster := c.enrollmentService.GetStudentsForCourse(ctx, ctx.Param("code"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roster, ""))
}

// GetOfferingEnrollments handles GET /courses/:code/semesters/:semester/enrollments
func (c *EnrollmentController) GetOfferingEnrollments(ctx *gin.Context) {
	records := c.enrollmentService.ListEnrollmentsForCourse(ctx, ctx.Param("code"), ctx.Param("semester"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}
