package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/app/services"
	"github.com/hostelhub/hostelhub/internal/middleware"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Create handles student profile creation
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Student true "Student profile"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		bindError(ctx, "Invalid student data", err)
		return
	}

	id, err := c.studentService.Create(ctx.Request.Context(), &student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// Get retrieves a student profile
// @Summary Get student
// @Description Any staff role may read any profile; a student only their own
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	identity, _ := middleware.GetIdentity(ctx)

	doc, err := c.studentService.Get(ctx.Request.Context(), identity, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, doc)
}

// Update patches a student profile
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student id"
// @Param request body map[string]interface{} true "Fields to patch"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindError(ctx, "Invalid update data", err)
		return
	}

	if err := c.studentService.Update(ctx.Request.Context(), ctx.Param("id"), patch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdatedResponse{Updated: true})
}

// Delete removes a student profile
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student id"
// @Success 200 {object} dto.DeletedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeletedResponse{Deleted: true})
}
