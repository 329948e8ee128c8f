package models

import "github.com/google/uuid"

// Feedback defines a supervisor's feedback entry for a student. The
// authorization scope of a row is derived transitively: student -> program ->
// program supervisor.
type Feedback struct {
	ID           uuid.UUID `json:"feedback_id" db:"feedback_id"`
	StudentID    uuid.UUID `json:"student_id" db:"student_id"`
	SupervisorID uuid.UUID `json:"supervisor_id" db:"supervisor_id"`
	Feedback     string    `json:"feedback" db:"feedback"`
	Rating       int       `json:"rating" db:"rating"`
	FeedbackDate *Date     `json:"feedback_date" db:"feedback_date"`
}
