package dto

// EnrollmentRequest identifies a student in a course offering
type EnrollmentRequest struct {
	StudentID  string `json:"studentId" binding:"required,notblank" example:"S1001"`
	CourseCode string `json:"courseCode" binding:"required,notblank" example:"CS101"`
	Semester   string `json:"semester" binding:"required,notblank" example:"Fall2025"`
}

// StatusRequest moves enrollment records to a new status, given by name or
// short code
type StatusRequest struct {
	EnrollmentRequest
	Status string `json:"status" binding:"required,notblank" example:"COMPLETED"`
}

// GradeRequest records a numeric grade for one assessment type, given by
// name or short code
type GradeRequest struct {
	EnrollmentRequest
	GradeType string   `json:"gradeType" binding:"required,notblank" example:"MIDTERM"`
	Value     *float64 `json:"value" binding:"required,gte=0,lte=100" example:"87.5"`
}

// AttendanceRequest marks one session present or absent
type AttendanceRequest struct {
	EnrollmentRequest
	Session *int `json:"session" binding:"required,gte=0" example:"3"`
	Present bool `json:"present" example:"true"`
}
