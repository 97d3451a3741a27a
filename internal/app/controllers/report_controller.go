package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/filestorage"
)

// ReportController exposes the read-only report endpoints
type ReportController struct {
	reportService *services.ReportService
	storage       filestorage.FileStorage
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, storage filestorage.FileStorage) *ReportController {
	return &ReportController{
		reportService: reportService,
		storage:       storage,
	}
}

// GetStudentGPA handles GET /students/:id/gpa
func (c *ReportController) GetStudentGPA(ctx *gin.Context) {
	id := ctx.Param("id")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"studentId": id,
		"gpa":       c.reportService.ComputeGPA(ctx, id),
	}, ""))
}

// GetTopStudents handles GET /reports/top?n=10
func (c *ReportController) GetTopStudents(ctx *gin.Context) {
	n, err := strconv.Atoi(ctx.DefaultQuery("n", "10"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrBadRequest, "n must be an integer").
			WithDetails(map[string]interface{}{"n": ctx.Query("n")}))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.reportService.TopNStudentsByGPA(ctx, n), ""))
}

// GetGradeDistribution handles GET /reports/distribution?course=&semester=
func (c *ReportController) GetGradeDistribution(ctx *gin.Context) {
	dist := c.reportService.GradeDistribution(ctx, ctx.Query("course"), ctx.Query("semester"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dist, ""))
}

// GetAttendance handles GET /reports/attendance?student=&course=&semester=
func (c *ReportController) GetAttendance(ctx *gin.Context) {
	pct := c.reportService.AttendancePercentage(ctx, ctx.Query("student"), ctx.Query("course"), ctx.Query("semester"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"percentage": pct}, ""))
}

// ExportReport handles GET /reports/export/:type?format=yaml and returns the
// raw document rather than the JSON envelope
func (c *ReportController) ExportReport(ctx *gin.Context) {
	report, err := c.reportService.BuildReport(ctx, ctx.Param("type"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	format := ctx.DefaultQuery("format", "json")
	data, err := services.EncodeReport(report, format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	contentType := "application/json; charset=utf-8"
	if isYAML(format) {
		contentType = "application/yaml; charset=utf-8"
	}
	ctx.Data(http.StatusOK, contentType, data)
}

// ArchiveReport handles POST /reports/archive/:type?format=yaml. The report
// is written to file storage and the stored file is described in the response.
func (c *ReportController) ArchiveReport(ctx *gin.Context) {
	report, err := c.reportService.BuildReport(ctx, ctx.Param("type"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	format := ctx.DefaultQuery("format", "json")
	data, err := services.EncodeReport(report, format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ext := ".json"
	if isYAML(format) {
		ext = ".yaml"
	}
	info, err := c.storage.Save("reports/"+report.Type, ext, data)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(info, "Report archived"))
}

// DeleteArchivedReport handles DELETE /reports/archive/*path
func (c *ReportController) DeleteArchivedReport(ctx *gin.Context) {
	if err := c.storage.DeleteFile(ctx.Param("path")); err != nil {
		if errors.Is(err, filestorage.ErrInvalidPath) {
			detail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error()).WithField("path")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func isYAML(format string) bool {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return true
	}
	return false
}
