package models

import "github.com/google/uuid"

// InternshipProgram defines the program model based on the
// 'internship_programs' table.
type InternshipProgram struct {
	ID           uuid.UUID  `json:"program_id" db:"program_id"`
	Name         string     `json:"program_name" db:"program_name"`
	StartDate    *Date      `json:"start_date,omitempty" db:"start_date"`
	EndDate      *Date      `json:"end_date,omitempty" db:"end_date"`
	SupervisorID *uuid.UUID `json:"supervisor_id,omitempty" db:"supervisor_id"`
	Details      *string    `json:"details,omitempty" db:"details"`
	Status       string     `json:"status" db:"status"`

	// Joined column, populated by list queries only
	SupervisorUsername *string `json:"supervisor_username,omitempty"`
}
