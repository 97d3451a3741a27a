package dto

import "github.com/yigit/registrar/internal/app/models"

// CreateStudentRequest represents student registration data
type CreateStudentRequest struct {
	ID         string            `json:"id" binding:"required,notblank" example:"S1001"`
	FullName   string            `json:"fullName" example:"John Doe"`
	Email      string            `json:"email" binding:"required,notblank" example:"john@school.edu"`
	Phone      string            `json:"phone" example:"+90 555 000 0000"`
	Attributes map[string]string `json:"attributes"`
}

// ToModel converts the request into a student model
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		ID:         r.ID,
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Attributes: r.Attributes,
	}
}

// UpdateContactRequest carries new contact details; blank fields are left unchanged
type UpdateContactRequest struct {
	Email string `json:"email" example:"john.doe@school.edu"`
	Phone string `json:"phone" example:"+90 555 111 2233"`
}

// UpdateAttributesRequest carries attributes to merge into a student profile
type UpdateAttributesRequest struct {
	Attributes map[string]string `json:"attributes" binding:"required"`
}
