package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink/internlink/internal/app/services"
	"github.com/internlink/internlink/internal/middleware"
)

// SupervisorController handles the supervisor's student listing.
type SupervisorController struct {
	studentService *services.StudentService
}

// NewSupervisorController creates a new SupervisorController
func NewSupervisorController(studentService *services.StudentService) *SupervisorController {
	return &SupervisorController{studentService: studentService}
}

// ListStudents handles GET /api/supervisor/students. Each row carries
// whether the caller has already left feedback for that student.
func (ctrl *SupervisorController) ListStudents(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	students, err := ctrl.studentService.ListSupervised(c.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}
