package dto

import "github.com/yigit/registrar/internal/app/models"

// CreateInstructorRequest represents instructor creation data
type CreateInstructorRequest struct {
	ID            string   `json:"id" binding:"required,notblank" example:"I42"`
	Name          string   `json:"name" example:"Ada Lovelace"`
	CoursesTaught []string `json:"coursesTaught" example:"CS101,CS201"`
}

// ToModel converts the request into an instructor model
func (r *CreateInstructorRequest) ToModel() *models.Instructor {
	return &models.Instructor{
		ID:            r.ID,
		Name:          r.Name,
		CoursesTaught: r.CoursesTaught,
	}
}
