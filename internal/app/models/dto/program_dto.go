package dto

import "github.com/google/uuid"

// ProgramRequest is the body of program creation and single-row updates.
// POST also accepts an array of these.
type ProgramRequest struct {
	Name         string     `json:"program_name" binding:"required"`
	StartDate    *string    `json:"start_date"`
	EndDate      *string    `json:"end_date"`
	SupervisorID *uuid.UUID `json:"supervisor_id"`
	Details      *string    `json:"details"`
	Status       *string    `json:"status"`
}

// ProgramBulkUpdateItem is one element of PUT /api/internship_programs/bulk.
type ProgramBulkUpdateItem struct {
	ProgramID    uuid.UUID  `json:"program_id" binding:"required"`
	Name         string     `json:"program_name" binding:"required"`
	StartDate    *string    `json:"start_date"`
	EndDate      *string    `json:"end_date"`
	SupervisorID *uuid.UUID `json:"supervisor_id"`
	Details      *string    `json:"details"`
	Status       *string    `json:"status"`
}
