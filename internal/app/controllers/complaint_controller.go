package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/app/services"
	"github.com/hostelhub/hostelhub/internal/middleware"
)

// ComplaintController handles complaint operations
type ComplaintController struct {
	complaintService services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService) *ComplaintController {
	return &ComplaintController{complaintService: complaintService}
}

// Create files a complaint
// @Summary Create complaint
// @Description Staff may file for any student; students only for themselves
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Complaint true "Complaint"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/complaints [post]
func (c *ComplaintController) Create(ctx *gin.Context) {
	identity, _ := middleware.GetIdentity(ctx)

	var complaint models.Complaint
	if err := ctx.ShouldBindJSON(&complaint); err != nil {
		bindError(ctx, "Invalid complaint data", err)
		return
	}

	id, err := c.complaintService.Create(ctx.Request.Context(), identity, &complaint)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// AddUpdate appends a staff note to a complaint
// @Summary Add complaint update
// @Description Appends a note and moves the complaint to in_progress
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint id"
// @Param request body dto.ComplaintUpdateRequest true "Update note"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Router /api/complaints/{id}/updates [post]
func (c *ComplaintController) AddUpdate(ctx *gin.Context) {
	identity, _ := middleware.GetIdentity(ctx)

	var req dto.ComplaintUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid update data", err)
		return
	}

	id, err := c.complaintService.AddUpdate(ctx.Request.Context(), identity, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}
