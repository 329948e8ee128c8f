package dto

import "github.com/google/uuid"

// IDListRequest is the body of bulk delete endpoints.
type IDListRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}
