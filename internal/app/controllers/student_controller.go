package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/app/services"
	"github.com/internlink/internlink/internal/middleware"
)

// StudentController handles student profile endpoints.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// List handles GET /api/students
func (ctrl *StudentController) List(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	students, err := ctrl.studentService.List(c.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetOwn handles GET /api/students/me
func (ctrl *StudentController) GetOwn(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	student, err := ctrl.studentService.GetOwn(c.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// Create handles POST /api/students, accepting a single object or an array.
func (ctrl *StudentController) Create(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	reqs, ok := bindOneOrMany[dto.StudentRequest](c)
	if !ok {
		return
	}

	if err := ctrl.studentService.Create(c.Request.Context(), identity, reqs); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "students created successfully"})
}

// Update handles PUT /api/students/:id
func (ctrl *StudentController) Update(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.StudentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ctrl.studentService.Update(c.Request.Context(), identity, id, req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "student updated successfully"})
}

// Delete handles DELETE /api/students/:id
func (ctrl *StudentController) Delete(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "student deleted successfully"})
}

// DeleteBulk handles DELETE /api/students/bulk
func (ctrl *StudentController) DeleteBulk(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.IDListRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ctrl.studentService.DeleteMany(c.Request.Context(), identity, req.IDs); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "students deleted successfully"})
}
