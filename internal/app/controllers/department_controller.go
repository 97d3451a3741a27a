package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService *services.DepartmentService
	courseService     *services.CourseService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService, courseService *services.CourseService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		courseService:     courseService,
	}
}

// CreateDepartment handles department creation
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	department := req.ToModel()
	if err := c.departmentService.CreateDepartment(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	stored, err := c.departmentService.GetDepartmentByID(ctx, department.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(stored, "Department created successfully"))
}

// GetDepartmentByID retrieves a department by ID
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, ""))
}

// GetAllDepartments retrieves all departments ordered by ID
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	departments := c.departmentService.ListAllDepartments(ctx)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(helpers.Paginate(departments, page, size), ""))
}

// GetDepartmentCourses lists the courses grouped under a department, in code order
func (c *DepartmentController) GetDepartmentCourses(ctx *gin.Context) {
	courses := c.courseService.ListCoursesByDepartment(ctx, ctx.Param("id"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// DeleteDepartment deletes a department
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	c.departmentService.DeleteDepartment(ctx, ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}
