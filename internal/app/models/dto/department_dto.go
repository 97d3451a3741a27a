package dto

import "github.com/yigit/registrar/internal/app/models"

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	ID      string   `json:"id" binding:"required,notblank" example:"CS"`
	Name    string   `json:"name" binding:"required,notblank" example:"Computer Science"`
	Courses []string `json:"courses" example:"CS101,CS201"`
}

// ToModel converts the request into a department model
func (r *CreateDepartmentRequest) ToModel() *models.Department {
	return &models.Department{
		ID:      r.ID,
		Name:    r.Name,
		Courses: r.Courses,
	}
}
