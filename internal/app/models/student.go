package models

import "github.com/google/uuid"

// Student defines the student profile model based on the 'students' table.
// UserID links the profile to at most one user account; ProgramID links it
// to at most one internship program. Both are optional.
type Student struct {
	ID                   uuid.UUID  `json:"student_id" db:"student_id"`
	FirstName            string     `json:"first_name" db:"first_name"`
	LastName             string     `json:"last_name" db:"last_name"`
	University           *string    `json:"university,omitempty" db:"university"`
	Department           *string    `json:"department,omitempty" db:"department"`
	InternshipDepartment *string    `json:"internship_department,omitempty" db:"internship_department"`
	InternshipStartDate  *Date      `json:"internship_start_date,omitempty" db:"internship_start_date"`
	InternshipEndDate    *Date      `json:"internship_end_date,omitempty" db:"internship_end_date"`
	Email                *string    `json:"email,omitempty" db:"email"`
	PhoneNumber          *string    `json:"phone_number,omitempty" db:"phone_number"`
	Status               string     `json:"status" db:"status"`
	Comments             *string    `json:"comments,omitempty" db:"comments"`
	InternshipYear       *int       `json:"internship_year,omitempty" db:"internship_year"`
	UserID               *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	ProgramID            *uuid.UUID `json:"program_id,omitempty" db:"program_id"`

	// Joined columns, populated by list queries only
	Username    *string `json:"username,omitempty"`
	ProgramName *string `json:"program_name,omitempty"`
}

// SupervisedStudent is a student row in the supervisor listing, carrying the
// derived feedback flag for the requesting supervisor.
type SupervisedStudent struct {
	Student
	FeedbackGiven bool `json:"feedback_given"`
}
