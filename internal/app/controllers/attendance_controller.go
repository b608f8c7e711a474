package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/app/services"
	"github.com/hostelhub/hostelhub/internal/middleware"
)

// AttendanceController handles attendance, late entry and leave
// operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Mark records daily attendance
// @Summary Mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Attendance true "Attendance record"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/attendance [post]
func (c *AttendanceController) Mark(ctx *gin.Context) {
	var att models.Attendance
	if err := ctx.ShouldBindJSON(&att); err != nil {
		bindError(ctx, "Invalid attendance data", err)
		return
	}

	id, err := c.attendanceService.Mark(ctx.Request.Context(), &att)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// LateEntry records a late arrival
// @Summary Record late entry
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LateEntry true "Late entry"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/attendance/late [post]
func (c *AttendanceController) LateEntry(ctx *gin.Context) {
	var entry models.LateEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		bindError(ctx, "Invalid late entry data", err)
		return
	}

	id, err := c.attendanceService.RecordLateEntry(ctx.Request.Context(), &entry)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// RequestLeave files a leave request
// @Summary Request leave
// @Description Staff may file for any student; students only for themselves
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LeaveRequest true "Leave request"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/attendance/leave [post]
func (c *AttendanceController) RequestLeave(ctx *gin.Context) {
	identity, _ := middleware.GetIdentity(ctx)

	var req models.LeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid leave request data", err)
		return
	}

	id, err := c.attendanceService.RequestLeave(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// SetLeaveStatus overwrites a leave request's status
// @Summary Update leave status
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave request id"
// @Param request body dto.LeaveStatusRequest true "New status"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Leave request not found"
// @Router /api/attendance/leave/{id}/status [post]
func (c *AttendanceController) SetLeaveStatus(ctx *gin.Context) {
	var req dto.LeaveStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid status data", err)
		return
	}

	if err := c.attendanceService.SetLeaveStatus(ctx.Request.Context(), ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdatedResponse{Updated: true})
}
