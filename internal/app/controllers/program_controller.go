package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/app/services"
	"github.com/internlink/internlink/internal/middleware"
)

// ProgramController handles internship program endpoints.
type ProgramController struct {
	programService *services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

// List handles GET /api/internship_programs
func (ctrl *ProgramController) List(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	programs, err := ctrl.programService.List(c.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

// Create handles POST /api/internship_programs and its /bulk variant,
// accepting a single object or an array.
func (ctrl *ProgramController) Create(c *gin.Context) {
	reqs, ok := bindOneOrMany[dto.ProgramRequest](c)
	if !ok {
		return
	}

	if err := ctrl.programService.Create(c.Request.Context(), reqs); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "programs created successfully"})
}

// Update handles PUT /api/internship_programs/:id
func (ctrl *ProgramController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.ProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ctrl.programService.Update(c.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "program updated successfully"})
}

// UpdateBulk handles PUT /api/internship_programs/bulk
func (ctrl *ProgramController) UpdateBulk(c *gin.Context) {
	items, ok := bindOneOrMany[dto.ProgramBulkUpdateItem](c)
	if !ok {
		return
	}

	if err := ctrl.programService.UpdateMany(c.Request.Context(), items); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "programs updated successfully"})
}

// Delete handles DELETE /api/internship_programs/:id
func (ctrl *ProgramController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctrl.programService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "program deleted successfully"})
}

// DeleteBulk handles DELETE /api/internship_programs/bulk
func (ctrl *ProgramController) DeleteBulk(c *gin.Context) {
	var req dto.IDListRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ctrl.programService.DeleteMany(c.Request.Context(), req.IDs); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "programs deleted successfully"})
}

// ImportCSV handles POST /api/internship_programs/import. The CSV document
// arrives as a multipart upload under the form field "file".
func (ctrl *ProgramController) ImportCSV(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("csv file is required under form field 'file'"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to open uploaded file"))
		return
	}
	defer file.Close()

	count, err := ctrl.programService.ImportCSV(c.Request.Context(), identity, file)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: fmt.Sprintf("%d programs imported successfully", count),
	})
}
