package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
)

// HealthController reports liveness and store sizes
type HealthController struct {
	repos   *repositories.Repositories
	version string
	started time.Time
}

// NewHealthController creates a new HealthController
func NewHealthController(repos *repositories.Repositories, version string) *HealthController {
	return &HealthController{
		repos:   repos,
		version: version,
		started: time.Now(),
	}
}

// Health handles GET /health
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"status":  "ok",
		"version": c.version,
		"uptime":  time.Since(c.started).Round(time.Second).String(),
		"records": gin.H{
			"students":      c.repos.StudentRepository.Len(),
			"instructors":   c.repos.InstructorRepository.Len(),
			"courses":       c.repos.CourseRepository.Len(),
			"departments":   c.repos.DepartmentRepository.Len(),
			"enrollments":   c.repos.EnrollmentRepository.Len(),
			"notifications": c.repos.NotificationRepository.Len(),
		},
	}, ""))
}
