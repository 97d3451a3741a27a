package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// StudentController handles student-related endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent registers a student.
// POST /students
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student := req.ToModel()
	if err := c.studentService.RegisterStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student registered successfully"))
}

// GetStudentByID retrieves a student.
// GET /students/:id
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// ListStudents returns a page of students. With ?name= only students having
// that name token are listed; ?email= lists the one student registered with
// that address, if any.
// GET /students
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students := c.studentService.ListStudents(ctx)
	if token, ok := ctx.GetQuery("name"); ok {
		students = c.studentService.SearchStudentsByName(ctx, token)
	} else if email, ok := ctx.GetQuery("email"); ok {
		students = []*models.Student{}
		if student, err := c.studentService.GetStudentByEmail(ctx, email); err == nil {
			students = append(students, student)
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(helpers.Paginate(students, page, size), ""))
}

// UpdateContact changes a student's email and phone.
// PATCH /students/:id/contact
func (c *StudentController) UpdateContact(ctx *gin.Context) {
	var req dto.UpdateContactRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")
	if err := c.studentService.UpdateContact(ctx, id, req.Email, req.Phone); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondWithStudent(ctx, id, "Contact updated successfully")
}

// UpdateAttributes merges profile attributes.
// PATCH /students/:id/attributes
func (c *StudentController) UpdateAttributes(ctx *gin.Context) {
	var req dto.UpdateAttributesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")
	if err := c.studentService.UpdateAttributes(ctx, id, req.Attributes); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.respondWithStudent(ctx, id, "Attributes updated successfully")
}

func (c *StudentController) respondWithStudent(ctx *gin.Context, id, message string) {
	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, message))
}

// DeleteStudent removes a student. Unknown IDs also answer 204.
// DELETE /students/:id
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	c.studentService.DeleteStudent(ctx, ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}
