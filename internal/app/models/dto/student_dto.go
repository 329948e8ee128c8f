package dto

import "github.com/google/uuid"

// StudentRequest is the body of POST /api/students and PUT /api/students/:id.
// POST also accepts an array of these.
type StudentRequest struct {
	FirstName            string     `json:"first_name" binding:"required"`
	LastName             string     `json:"last_name" binding:"required"`
	University           *string    `json:"university"`
	Department           *string    `json:"department"`
	InternshipDepartment *string    `json:"internship_department"`
	InternshipStartDate  *string    `json:"internship_start_date"`
	InternshipEndDate    *string    `json:"internship_end_date"`
	Email                *string    `json:"email" binding:"omitempty,email"`
	PhoneNumber          *string    `json:"phone_number"`
	Status               *string    `json:"status"`
	Comments             *string    `json:"comments"`
	InternshipYear       int        `json:"internship_year" binding:"required,min=2000"`
	UserID               *uuid.UUID `json:"user_id"`
	ProgramID            *uuid.UUID `json:"program_id"`
}
