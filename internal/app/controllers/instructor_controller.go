package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// InstructorController handles instructor related operations
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new instructor controller
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// CreateInstructor handles POST /instructors
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	instructor := req.ToModel()
	if err := c.instructorService.CreateInstructor(ctx, instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Re-read so the response shows the stored, de-duplicated course list
	stored, err := c.instructorService.GetInstructorByID(ctx, instructor.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(stored, "Instructor created successfully"))
}

// GetInstructorByID handles GET /instructors/:id
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	instructor, err := c.instructorService.GetInstructorByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructor, ""))
}

// SearchInstructors handles GET /instructors?name=token
func (c *InstructorController) SearchInstructors(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	instructors := c.instructorService.SearchInstructorsByName(ctx, ctx.Query("name"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(helpers.Paginate(instructors, page, size), ""))
}

// ListInstructorsForCourse handles GET /courses/:code/instructors
func (c *InstructorController) ListInstructorsForCourse(ctx *gin.Context) {
	instructors := c.instructorService.ListInstructorsForCourse(ctx, ctx.Param("code"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructors, ""))
}

// DeleteInstructor handles DELETE /instructors/:id
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	c.instructorService.DeleteInstructor(ctx, ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}
