package dto

import "github.com/google/uuid"

// CreateFeedbackRequest is the body of POST /api/feedback. The author is
// taken from the caller identity, never from the body.
type CreateFeedbackRequest struct {
	StudentID    uuid.UUID `json:"student_id" binding:"required"`
	Feedback     string    `json:"feedback" binding:"required"`
	Rating       int       `json:"rating" binding:"required,min=1,max=5"`
	FeedbackDate *string   `json:"feedback_date"`
}

// UpdateFeedbackRequest is the body of PUT /api/feedback/:id. Only these
// three fields are mutable; ids are immutable after creation. An entirely
// empty body is rejected.
type UpdateFeedbackRequest struct {
	Feedback     *string `json:"feedback" binding:"omitempty,min=1"`
	Rating       *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	FeedbackDate *string `json:"feedback_date"`
}

// Empty reports whether the request changes nothing.
func (r *UpdateFeedbackRequest) Empty() bool {
	return r.Feedback == nil && r.Rating == nil && r.FeedbackDate == nil
}

// FeedbackCreatedResponse carries the new row id.
type FeedbackCreatedResponse struct {
	Message    string    `json:"message"`
	FeedbackID uuid.UUID `json:"feedback_id"`
}
