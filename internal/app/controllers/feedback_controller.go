package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/app/services"
	"github.com/internlink/internlink/internal/middleware"
)

// FeedbackController handles feedback endpoints.
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// List handles GET /api/feedback with an optional student_id query filter.
// The filter narrows but never widens the caller's visibility.
func (ctrl *FeedbackController) List(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var studentID *uuid.UUID
	if raw := c.Query("student_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id must be a valid uuid"))
			return
		}
		studentID = &parsed
	}

	feedbacks, err := ctrl.feedbackService.List(c.Request.Context(), identity, studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}

// Create handles POST /api/feedback
func (ctrl *FeedbackController) Create(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := ctrl.feedbackService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FeedbackCreatedResponse{
		Message:    "feedback created successfully",
		FeedbackID: id,
	})
}

// Update handles PUT /api/feedback/:id
func (ctrl *FeedbackController) Update(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ctrl.feedbackService.Update(c.Request.Context(), identity, id, req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "feedback updated successfully"})
}

// Delete handles DELETE /api/feedback/:id
func (ctrl *FeedbackController) Delete(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctrl.feedbackService.Delete(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "feedback deleted successfully"})
}
